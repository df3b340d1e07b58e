package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/service"
)

// PagesHandler páginas HTML da aplicação.
// Operações de escrita redirecionam para a listagem correspondente;
// referência a id inexistente em devolver/excluir/editar segue o
// contrato de no-op: o redirect acontece como se tivesse dado certo.
type PagesHandler struct {
	svc *service.Service
}

// NewPagesHandler cria o PagesHandler
func NewPagesHandler(svc *service.Service) *PagesHandler {
	return &PagesHandler{svc: svc}
}

// Index página inicial
// GET /
func (h *PagesHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// SearchPage busca combinada renderizada na página inicial
// GET /search?q=
func (h *PagesHandler) SearchPage(c *gin.Context) {
	result, err := h.svc.Search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.String(http.StatusInternalServerError, "erro na busca")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"SearchQuery":   result.Query,
		"SearchRentals": result.Rentals,
		"SearchItems":   result.Items,
	})
}

// ── Professores ──

// Teachers lista de professores
// GET /teachers
func (h *PagesHandler) Teachers(c *gin.Context) {
	teachers, err := h.svc.Teacher.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao listar professores")
		return
	}
	c.HTML(http.StatusOK, "teachers.html", gin.H{"Teachers": teachers})
}

// TeacherForm formulário de cadastro
// GET /teachers/new
func (h *PagesHandler) TeacherForm(c *gin.Context) {
	c.HTML(http.StatusOK, "teacher_form.html", gin.H{})
}

// TeacherCreate cadastro de professor
// POST /teachers/new
func (h *PagesHandler) TeacherCreate(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "campos obrigatórios ausentes")
		return
	}

	if _, err := h.svc.Teacher.Create(c.Request.Context(), &req); err != nil {
		c.String(http.StatusInternalServerError, "erro ao cadastrar professor")
		return
	}

	c.Redirect(http.StatusFound, "/teachers")
}

// ── Locações ──

// Rentals lista de locações
// GET /rentals
func (h *PagesHandler) Rentals(c *gin.Context) {
	rentals, err := h.svc.Rental.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao listar locações")
		return
	}
	c.HTML(http.StatusOK, "rentals.html", gin.H{"Rentals": rentals})
}

// RentalForm formulário de nova locação
// GET /rentals/new
func (h *PagesHandler) RentalForm(c *gin.Context) {
	c.HTML(http.StatusOK, "rental_form.html", gin.H{})
}

// RentalCreate criação de locação
// POST /rentals/new
func (h *PagesHandler) RentalCreate(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "campos obrigatórios ausentes")
		return
	}

	if _, err := h.svc.Rental.Create(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrDataHoraInvalida) {
			c.String(http.StatusBadRequest, "data ou hora inválida")
			return
		}
		c.String(http.StatusInternalServerError, "erro ao criar locação")
		return
	}

	c.Redirect(http.StatusFound, "/rentals")
}

// RentalReturn devolução de equipamento
// GET /rentals/return/:id
func (h *PagesHandler) RentalReturn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	if _, err := h.svc.Rental.MarkReturned(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "erro ao devolver locação")
		return
	}

	c.Redirect(http.StatusFound, "/rentals")
}

// RentalDelete exclusão de locação
// POST /rentals/delete/:id
func (h *PagesHandler) RentalDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	if _, err := h.svc.Rental.Delete(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "erro ao excluir locação")
		return
	}

	c.Redirect(http.StatusFound, "/rentals")
}

// ── Inventário ──

// Inventory lista de itens
// GET /inventory
func (h *PagesHandler) Inventory(c *gin.Context) {
	items, err := h.svc.Inventory.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao listar inventário")
		return
	}
	c.HTML(http.StatusOK, "inventory.html", gin.H{"Items": items})
}

// InventoryForm formulário de novo item
// GET /inventory/new
func (h *PagesHandler) InventoryForm(c *gin.Context) {
	c.HTML(http.StatusOK, "inventory_form.html", gin.H{})
}

// InventoryCreate criação de item
// POST /inventory/new
func (h *PagesHandler) InventoryCreate(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "campos obrigatórios ausentes")
		return
	}

	if _, err := h.svc.Inventory.Create(c.Request.Context(), &req); err != nil {
		c.String(http.StatusInternalServerError, "erro ao criar item")
		return
	}

	c.Redirect(http.StatusFound, "/inventory")
}

// InventoryDelete exclusão de item
// GET /inventory/delete/:id
func (h *PagesHandler) InventoryDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	if _, err := h.svc.Inventory.Delete(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "erro ao excluir item")
		return
	}

	c.Redirect(http.StatusFound, "/inventory")
}

// InventoryEditForm formulário pré-preenchido de edição
// GET /inventory/edit/:id
func (h *PagesHandler) InventoryEditForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	item, err := h.svc.Inventory.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.Redirect(http.StatusFound, "/inventory")
			return
		}
		c.String(http.StatusInternalServerError, "erro ao consultar item")
		return
	}

	c.HTML(http.StatusOK, "inventory_form.html", gin.H{"Item": item, "Edit": true})
}

// InventoryUpdate atualização de item (substituição completa)
// POST /inventory/edit/:id
func (h *PagesHandler) InventoryUpdate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "campos obrigatórios ausentes")
		return
	}

	if _, err := h.svc.Inventory.Update(c.Request.Context(), id, &req); err != nil && !errors.Is(err, service.ErrItemNotFound) {
		c.String(http.StatusInternalServerError, "erro ao atualizar item")
		return
	}

	c.Redirect(http.StatusFound, "/inventory")
}
