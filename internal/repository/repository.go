package repository

import "gorm.io/gorm"

// Repository agregado de todos os repositórios
type Repository struct {
	Rental    RentalRepository
	Inventory InventoryRepository
	Teacher   TeacherRepository
}

// NewRepository cria o agregado de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Rental:    NewRentalRepo(db),
		Inventory: NewInventoryRepo(db),
		Teacher:   NewTeacherRepo(db),
	}
}
