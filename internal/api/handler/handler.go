package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/service"
)

// Handler agregado de todos os handlers
type Handler struct {
	Pages     *PagesHandler
	Rental    *RentalHandler
	Inventory *InventoryHandler
	Teacher   *TeacherHandler
	Search    *SearchHandler
	Export    *ExportHandler
}

// NewHandler cria o agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Pages:     NewPagesHandler(svc),
		Rental:    NewRentalHandler(svc.Rental),
		Inventory: NewInventoryHandler(svc.Inventory),
		Teacher:   NewTeacherHandler(svc.Teacher),
		Search:    NewSearchHandler(svc.Search),
		Export:    NewExportHandler(svc.Export),
	}
}

// parseIDParam lê o parâmetro de rota :id como inteiro sem sinal
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
