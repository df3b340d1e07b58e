package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sandrogaltran08/cief/internal/model"
)

// InventoryRepository acesso a dados do inventário
type InventoryRepository interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	GetByID(ctx context.Context, id uint) (*model.InventoryItem, error)
	Create(ctx context.Context, item *model.InventoryItem) error
	Update(ctx context.Context, item *model.InventoryItem) error
	// Delete remove o item; found=false quando o id não existe
	Delete(ctx context.Context, id uint) (bool, error)
	// Search busca por substring (sem distinção de maiúsculas) em
	// nome, tipo ou descricao
	Search(ctx context.Context, term string) ([]model.InventoryItem, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepo cria uma instância de InventoryRepository
func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepo) Search(ctx context.Context, term string) ([]model.InventoryItem, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ? OR LOWER(tipo) LIKE ? OR LOWER(descricao) LIKE ?",
			pattern, pattern, pattern).
		Find(&items).Error
	return items, err
}
