package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

// ── Erros do módulo de locações ──

var (
	ErrDataHoraInvalida = errors.New("data ou hora da locação inválida")
)

// Formatos de data/hora: o formulário envia o formato de exibição,
// o banco guarda o formato ordenável.
const (
	displayLayout = "02/01/2006 15:04"
	storageLayout = "2006-01-02 15:04:05"
)

// RentalService regras de negócio de locações
type RentalService interface {
	List(ctx context.Context) ([]dto.RentalResponse, error)
	// Create combina data+hora, normaliza para o formato de armazenamento
	// e grava a locação com status Em Uso
	Create(ctx context.Context, req *dto.CreateRentalRequest) (*dto.RentalResponse, error)
	// MarkReturned grava status Devolvido; idempotente.
	// found=false quando o id não existe (nenhum erro é gerado)
	MarkReturned(ctx context.Context, id uint) (bool, error)
	// Delete remove a locação; found=false quando o id não existe
	Delete(ctx context.Context, id uint) (bool, error)
}

type rentalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRentalService cria uma instância de RentalService
func NewRentalService(repo *repository.Repository, logger *zap.Logger) RentalService {
	return &rentalService{repo: repo, logger: logger}
}

func (s *rentalService) List(ctx context.Context) ([]dto.RentalResponse, error) {
	rentals, err := s.repo.Rental.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar locações", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RentalResponse, 0, len(rentals))
	for i := range rentals {
		result = append(result, *toRentalResponse(&rentals[i]))
	}

	return result, nil
}

func (s *rentalService) Create(ctx context.Context, req *dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	dataHora, err := combineDataHora(req.Data, req.Hora)
	if err != nil {
		s.logger.Warn("data/hora de locação rejeitada",
			zap.String("data", req.Data),
			zap.String("hora", req.Hora),
			zap.Error(err))
		return nil, ErrDataHoraInvalida
	}

	rental := &model.Rental{
		Professor:   req.Professor,
		Materia:     req.Materia,
		Sala:        req.Sala,
		Turma:       req.Turma,
		DataHora:    dataHora,
		TempoUso:    req.TempoUso,
		Equipamento: req.Equipamento,
		Status:      model.StatusEmUso,
	}

	if err := s.repo.Rental.Create(ctx, rental); err != nil {
		s.logger.Error("erro ao criar locação", zap.Error(err))
		return nil, err
	}

	return toRentalResponse(rental), nil
}

func (s *rentalService) MarkReturned(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Rental.MarkReturned(ctx, id)
	if err != nil {
		s.logger.Error("erro ao devolver locação", zap.Uint("id", id), zap.Error(err))
		return false, err
	}
	if !found {
		s.logger.Warn("devolução de locação inexistente", zap.Uint("id", id))
	}
	return found, nil
}

func (s *rentalService) Delete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Rental.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir locação", zap.Uint("id", id), zap.Error(err))
		return false, err
	}
	if !found {
		s.logger.Warn("exclusão de locação inexistente", zap.Uint("id", id))
	}
	return found, nil
}

// ── Auxiliares ──

// combineDataHora junta data (DD/MM/AAAA) e hora (HH:MM) do formulário
// e normaliza para "AAAA-MM-DD HH:MM:SS"
func combineDataHora(data, hora string) (string, error) {
	t, err := time.Parse(displayLayout, strings.TrimSpace(data)+" "+strings.TrimSpace(hora))
	if err != nil {
		return "", err
	}
	return t.Format(storageLayout), nil
}

// formatDataHora converte o formato de armazenamento para exibição.
// Valor fora do formato esperado é devolvido como está.
func formatDataHora(stored string) string {
	t, err := time.Parse(storageLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(displayLayout)
}

func toRentalResponse(r *model.Rental) *dto.RentalResponse {
	return &dto.RentalResponse{
		ID:          r.ID,
		Professor:   r.Professor,
		Materia:     r.Materia,
		Sala:        r.Sala,
		Turma:       r.Turma,
		DataHora:    formatDataHora(r.DataHora),
		TempoUso:    r.TempoUso,
		Equipamento: r.Equipamento,
		Status:      r.Status,
	}
}
