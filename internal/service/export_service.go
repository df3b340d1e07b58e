package service

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/report"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

// ExportService geração de relatórios para download.
//
// Cada método consulta as linhas e entrega o documento para o pacote
// report; o Handler define os cabeçalhos HTTP e escreve o buffer.
// Erros da biblioteca de renderização sobem sem modificação.
type ExportService interface {
	// InventoryPDF relatório tabular do inventário completo
	InventoryPDF(ctx context.Context) (*bytes.Buffer, string, error)
	// RentalsPDF relatório de locações, uma linha por registro
	RentalsPDF(ctx context.Context) (*bytes.Buffer, string, error)
	// InventoryXLSX planilha do inventário completo
	InventoryXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria uma instância de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) InventoryPDF(ctx context.Context) (*bytes.Buffer, string, error) {
	items, err := s.repo.Inventory.List(ctx)
	if err != nil {
		s.logger.Error("erro ao consultar inventário para exportação", zap.Error(err))
		return nil, "", err
	}

	buf, err := report.InventoryTable(items)
	if err != nil {
		s.logger.Error("erro ao gerar PDF do inventário", zap.Error(err))
		return nil, "", err
	}

	return buf, "inventario.pdf", nil
}

func (s *exportService) RentalsPDF(ctx context.Context) (*bytes.Buffer, string, error) {
	rentals, err := s.repo.Rental.List(ctx)
	if err != nil {
		s.logger.Error("erro ao consultar locações para exportação", zap.Error(err))
		return nil, "", err
	}

	buf, err := report.RentalLines(rentals)
	if err != nil {
		s.logger.Error("erro ao gerar PDF de locações", zap.Error(err))
		return nil, "", err
	}

	return buf, "locacoes.pdf", nil
}

func (s *exportService) InventoryXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	items, err := s.repo.Inventory.List(ctx)
	if err != nil {
		s.logger.Error("erro ao consultar inventário para exportação", zap.Error(err))
		return nil, "", err
	}

	buf, err := report.InventorySheet(items)
	if err != nil {
		s.logger.Error("erro ao gerar planilha do inventário", zap.Error(err))
		return nil, "", err
	}

	return buf, "inventario.xlsx", nil
}
