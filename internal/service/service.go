package service

import (
	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/repository"
)

// Service agregado de todos os serviços
type Service struct {
	Rental    RentalService
	Inventory InventoryService
	Teacher   TeacherService
	Search    SearchService
	Export    ExportService
}

// NewService cria o agregado de serviços
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Rental:    NewRentalService(repo, logger),
		Inventory: NewInventoryService(repo, logger),
		Teacher:   NewTeacherService(repo, logger),
		Search:    NewSearchService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}
