package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

func setupTestSearchService() (SearchService, *mockRentalRepo, *mockInventoryRepo) {
	rentalRepo := newMockRentalRepo()
	inventoryRepo := newMockInventoryRepo()
	repo := &repository.Repository{
		Rental:    rentalRepo,
		Inventory: inventoryRepo,
		Teacher:   newMockTeacherRepo(),
	}
	svc := NewSearchService(repo, zap.NewNop())
	return svc, rentalRepo, inventoryRepo
}

func TestSearchService_TermoEmBranco(t *testing.T) {
	svc, rentalRepo, _ := setupTestSearchService()
	rentalRepo.rentals[1] = &model.Rental{ID: 1, Professor: "Ana", Sala: "Lab 1"}

	for _, q := range []string{"", "   ", "\t"} {
		result, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) deveria funcionar: %v", q, err)
		}
		if len(result.Rentals) != 0 || len(result.Items) != 0 {
			t.Errorf("termo em branco deveria devolver listas vazias, veio %d/%d",
				len(result.Rentals), len(result.Items))
		}
	}
}

func TestSearchService_SubstringSemDistincaoDeMaiusculas(t *testing.T) {
	svc, rentalRepo, inventoryRepo := setupTestSearchService()

	rentalRepo.rentals[1] = &model.Rental{
		ID: 1, Professor: "Carlos", Materia: "Biologia", Sala: "LABORATÓRIO 3",
		DataHora: "2025-05-02 10:00:00", Status: model.StatusEmUso,
	}
	rentalRepo.rentals[2] = &model.Rental{
		ID: 2, Professor: "Beatriz", Materia: "História", Sala: "Sala 12",
		DataHora: "2025-05-03 10:00:00", Status: model.StatusEmUso,
	}
	inventoryRepo.items[1] = &model.InventoryItem{
		ID: 1, Nome: "Kit de laboratório", Tipo: "Ciências", Quantidade: 3,
	}
	inventoryRepo.items[2] = &model.InventoryItem{
		ID: 2, Nome: "Bola de vôlei", Tipo: "Esporte", Quantidade: 10,
	}

	result, err := svc.Search(context.Background(), "lab")
	if err != nil {
		t.Fatalf("Search deveria funcionar: %v", err)
	}

	if len(result.Rentals) != 1 || result.Rentals[0].ID != 1 {
		t.Errorf("esperava só a locação do laboratório, veio %+v", result.Rentals)
	}
	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Errorf("esperava só o kit de laboratório, veio %+v", result.Items)
	}
}

func TestSearchService_LocacoesOrdenadasPorDataDecrescente(t *testing.T) {
	svc, rentalRepo, _ := setupTestSearchService()

	rentalRepo.rentals[1] = &model.Rental{
		ID: 1, Professor: "Paulo Lima", DataHora: "2025-01-10 08:00:00",
	}
	rentalRepo.rentals[2] = &model.Rental{
		ID: 2, Professor: "Paulo Braga", DataHora: "2025-06-20 08:00:00",
	}

	result, err := svc.Search(context.Background(), "paulo")
	if err != nil {
		t.Fatalf("Search deveria funcionar: %v", err)
	}
	if len(result.Rentals) != 2 {
		t.Fatalf("esperava 2 locações, veio %d", len(result.Rentals))
	}
	if result.Rentals[0].ID != 2 || result.Rentals[1].ID != 1 {
		t.Errorf("esperava ordenação por data decrescente, veio %+v", result.Rentals)
	}
}
