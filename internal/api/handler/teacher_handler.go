package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/service"
	"github.com/Sandrogaltran08/cief/pkg/response"
)

// TeacherHandler módulo de professores da API JSON
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler cria o TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// ListTeachers lista de professores
// GET /api/v1/teachers
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": teachers})
}

// CreateTeacher cadastro de professor
// POST /api/v1/teachers
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, teacher)
}
