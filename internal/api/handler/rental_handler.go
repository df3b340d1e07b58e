package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/service"
	"github.com/Sandrogaltran08/cief/pkg/response"
)

// RentalHandler módulo de locações da API JSON
type RentalHandler struct {
	rentalSvc service.RentalService
}

// NewRentalHandler cria o RentalHandler
func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

// ListRentals lista de locações
// GET /api/v1/rentals
func (h *RentalHandler) ListRentals(c *gin.Context) {
	rentals, err := h.rentalSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rentals})
}

// CreateRental criação de locação
// POST /api/v1/rentals
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	rental, err := h.rentalSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDataHoraInvalida) {
			response.BadRequest(c, 11001, "data ou hora inválida")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, rental)
}

// ReturnRental devolução de equipamento; idempotente.
// found indica se alguma locação foi alterada.
// POST /api/v1/rentals/:id/return
func (h *RentalHandler) ReturnRental(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, 10002, "id inválido")
		return
	}

	found, err := h.rentalSvc.MarkReturned(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"found": found})
}

// DeleteRental exclusão de locação
// DELETE /api/v1/rentals/:id
func (h *RentalHandler) DeleteRental(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, 10002, "id inválido")
		return
	}

	found, err := h.rentalSvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"found": found})
}
