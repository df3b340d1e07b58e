package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/service"
	"github.com/Sandrogaltran08/cief/pkg/response"
)

// SearchHandler busca combinada da API JSON
type SearchHandler struct {
	searchSvc service.SearchService
}

// NewSearchHandler cria o SearchHandler
func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Search busca por substring em locações e inventário
// GET /api/v1/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searchSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
