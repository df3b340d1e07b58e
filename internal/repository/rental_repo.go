package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sandrogaltran08/cief/internal/model"
)

// RentalRepository acesso a dados de locações
type RentalRepository interface {
	List(ctx context.Context) ([]model.Rental, error)
	Create(ctx context.Context, rental *model.Rental) error
	// MarkReturned grava o status Devolvido; found=false quando o id não existe
	MarkReturned(ctx context.Context, id uint) (bool, error)
	// Delete remove a locação; found=false quando o id não existe
	Delete(ctx context.Context, id uint) (bool, error)
	// Search busca por substring (sem distinção de maiúsculas) em
	// professor, materia ou sala, ordenada por data_hora decrescente
	Search(ctx context.Context, term string) ([]model.Rental, error)
}

type rentalRepo struct {
	db *gorm.DB
}

// NewRentalRepo cria uma instância de RentalRepository
func NewRentalRepo(db *gorm.DB) RentalRepository {
	return &rentalRepo{db: db}
}

func (r *rentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.WithContext(ctx).Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepo) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepo) MarkReturned(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id = ?", id).
		Update("status", model.StatusDevolvido)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *rentalRepo) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Rental{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *rentalRepo) Search(ctx context.Context, term string) ([]model.Rental, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var rentals []model.Rental
	err := r.db.WithContext(ctx).
		Where("LOWER(professor) LIKE ? OR LOWER(materia) LIKE ? OR LOWER(sala) LIKE ?",
			pattern, pattern, pattern).
		Order("data_hora DESC").
		Find(&rentals).Error
	return rentals, err
}
