package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

// ── Erros do módulo de inventário ──

var (
	ErrItemNotFound = errors.New("item de inventário não encontrado")
)

// InventoryService regras de negócio do inventário
type InventoryService interface {
	List(ctx context.Context) ([]dto.InventoryItemResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.InventoryItemResponse, error)
	Create(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	// Update substitui os quatro campos mutáveis de uma vez;
	// ErrItemNotFound quando o id não existe
	Update(ctx context.Context, id uint, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	// Delete remove o item; found=false quando o id não existe
	Delete(ctx context.Context, id uint) (bool, error)
}

type inventoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventoryService cria uma instância de InventoryService
func NewInventoryService(repo *repository.Repository, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, logger: logger}
}

func (s *inventoryService) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.Inventory.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar inventário", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *toInventoryItemResponse(&items[i]))
	}

	return result, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id uint) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.Inventory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("erro ao consultar item", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) Create(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item := &model.InventoryItem{
		Nome:       req.Nome,
		Tipo:       req.Tipo,
		Quantidade: req.Quantidade,
		Descricao:  req.Descricao,
	}

	if err := s.repo.Inventory.Create(ctx, item); err != nil {
		s.logger.Error("erro ao criar item", zap.Error(err))
		return nil, err
	}

	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) Update(ctx context.Context, id uint, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.Inventory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("atualização de item inexistente", zap.Uint("id", id))
			return nil, ErrItemNotFound
		}
		s.logger.Error("erro ao consultar item", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	item.Nome = req.Nome
	item.Tipo = req.Tipo
	item.Quantidade = req.Quantidade
	item.Descricao = req.Descricao

	if err := s.repo.Inventory.Update(ctx, item); err != nil {
		s.logger.Error("erro ao atualizar item", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toInventoryItemResponse(item), nil
}

func (s *inventoryService) Delete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Inventory.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir item", zap.Uint("id", id), zap.Error(err))
		return false, err
	}
	if !found {
		s.logger.Warn("exclusão de item inexistente", zap.Uint("id", id))
	}
	return found, nil
}

// ── Auxiliares ──

func toInventoryItemResponse(item *model.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:         item.ID,
		Nome:       item.Nome,
		Tipo:       item.Tipo,
		Quantidade: item.Quantidade,
		Descricao:  item.Descricao,
	}
}
