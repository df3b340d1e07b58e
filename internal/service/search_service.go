package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

// SearchService busca combinada em locações e inventário
type SearchService interface {
	// Search procura o termo como substring, sem distinção de maiúsculas,
	// em locações (professor, materia, sala) e itens (nome, tipo, descricao).
	// Termo em branco devolve as duas listas vazias sem consultar o banco.
	Search(ctx context.Context, term string) (*dto.SearchResponse, error)
}

type searchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSearchService cria uma instância de SearchService
func NewSearchService(repo *repository.Repository, logger *zap.Logger) SearchService {
	return &searchService{repo: repo, logger: logger}
}

func (s *searchService) Search(ctx context.Context, term string) (*dto.SearchResponse, error) {
	term = strings.TrimSpace(term)

	resp := &dto.SearchResponse{
		Query:   term,
		Rentals: []dto.RentalResponse{},
		Items:   []dto.InventoryItemResponse{},
	}
	if term == "" {
		return resp, nil
	}

	rentals, err := s.repo.Rental.Search(ctx, term)
	if err != nil {
		s.logger.Error("erro na busca de locações", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	for i := range rentals {
		resp.Rentals = append(resp.Rentals, *toRentalResponse(&rentals[i]))
	}

	items, err := s.repo.Inventory.Search(ctx, term)
	if err != nil {
		s.logger.Error("erro na busca de inventário", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	for i := range items {
		resp.Items = append(resp.Items, *toInventoryItemResponse(&items[i]))
	}

	return resp, nil
}
