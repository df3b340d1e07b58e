package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/service"
	"github.com/Sandrogaltran08/cief/pkg/response"
)

// InventoryHandler módulo de inventário da API JSON
type InventoryHandler struct {
	inventorySvc service.InventoryService
}

// NewInventoryHandler cria o InventoryHandler
func NewInventoryHandler(inventorySvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc}
}

// ListItems lista de itens
// GET /api/v1/inventory
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventorySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// GetItem detalhe de item
// GET /api/v1/inventory/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, 10002, "id inválido")
		return
	}

	item, err := h.inventorySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleInventoryError(c, err)
		return
	}

	response.OK(c, item)
}

// CreateItem criação de item
// POST /api/v1/inventory
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	item, err := h.inventorySvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, item)
}

// UpdateItem atualização de item (substituição completa)
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, 10002, "id inválido")
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	item, err := h.inventorySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInventoryError(c, err)
		return
	}

	response.OK(c, item)
}

// DeleteItem exclusão de item
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, 10002, "id inválido")
		return
	}

	found, err := h.inventorySvc.Delete(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"found": found})
}

// handleInventoryError mapeia erros de negócio do inventário
func (h *InventoryHandler) handleInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		response.NotFound(c, 12001, "item não encontrado")
	default:
		response.InternalError(c)
	}
}
