package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Sandrogaltran08/cief/internal/model"
)

// ── Mock RentalRepository ──

type mockRentalRepo struct {
	rentals map[uint]*model.Rental
	nextID  uint
	err     error
}

func newMockRentalRepo() *mockRentalRepo {
	return &mockRentalRepo{rentals: make(map[uint]*model.Rental), nextID: 1}
}

func (m *mockRentalRepo) List(_ context.Context) ([]model.Rental, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.rentals))
	for id := range m.rentals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]model.Rental, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.rentals[id])
	}
	return result, nil
}

func (m *mockRentalRepo) Create(_ context.Context, rental *model.Rental) error {
	if m.err != nil {
		return m.err
	}
	rental.ID = m.nextID
	m.nextID++
	cp := *rental
	m.rentals[rental.ID] = &cp
	return nil
}

func (m *mockRentalRepo) MarkReturned(_ context.Context, id uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	r, ok := m.rentals[id]
	if !ok {
		return false, nil
	}
	r.Status = model.StatusDevolvido
	return true, nil
}

func (m *mockRentalRepo) Delete(_ context.Context, id uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.rentals[id]; !ok {
		return false, nil
	}
	delete(m.rentals, id)
	return true, nil
}

func (m *mockRentalRepo) Search(_ context.Context, term string) ([]model.Rental, error) {
	if m.err != nil {
		return nil, m.err
	}
	t := strings.ToLower(term)
	var result []model.Rental
	for _, r := range m.rentals {
		if strings.Contains(strings.ToLower(r.Professor), t) ||
			strings.Contains(strings.ToLower(r.Materia), t) ||
			strings.Contains(strings.ToLower(r.Sala), t) {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DataHora > result[j].DataHora })
	return result, nil
}

// ── Mock InventoryRepository ──

type mockInventoryRepo struct {
	items  map[uint]*model.InventoryItem
	nextID uint
	err    error
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{items: make(map[uint]*model.InventoryItem), nextID: 1}
}

func (m *mockInventoryRepo) List(_ context.Context) ([]model.InventoryItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]model.InventoryItem, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.items[id])
	}
	return result, nil
}

func (m *mockInventoryRepo) GetByID(_ context.Context, id uint) (*model.InventoryItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockInventoryRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if m.err != nil {
		return m.err
	}
	item.ID = m.nextID
	m.nextID++
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockInventoryRepo) Update(_ context.Context, item *model.InventoryItem) error {
	if m.err != nil {
		return m.err
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockInventoryRepo) Delete(_ context.Context, id uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *mockInventoryRepo) Search(_ context.Context, term string) ([]model.InventoryItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	t := strings.ToLower(term)
	var result []model.InventoryItem
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Nome), t) ||
			strings.Contains(strings.ToLower(item.Tipo), t) ||
			strings.Contains(strings.ToLower(item.Descricao), t) {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[uint]*model.Teacher
	nextID   uint
	err      error
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[uint]*model.Teacher), nextID: 1}
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.teachers))
	for id := range m.teachers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]model.Teacher, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.teachers[id])
	}
	return result, nil
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if m.err != nil {
		return m.err
	}
	teacher.ID = m.nextID
	m.nextID++
	cp := *teacher
	m.teachers[teacher.ID] = &cp
	return nil
}
