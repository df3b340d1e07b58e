package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

// TeacherService regras de negócio do quadro de professores.
// Somente listagem e cadastro: edição e remoção não existem no sistema.
type TeacherService interface {
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService cria uma instância de TeacherService
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar professores", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *toTeacherResponse(&teachers[i]))
	}

	return result, nil
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher := &model.Teacher{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Subject:         req.Subject,
		ExperienceYears: req.ExperienceYears,
		Schedule:        req.Schedule,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("erro ao cadastrar professor", zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

// ── Auxiliares ──

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:              t.ID,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Subject:         t.Subject,
		ExperienceYears: t.ExperienceYears,
		Schedule:        t.Schedule,
	}
}
