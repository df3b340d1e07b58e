package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/dto"
	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

func setupTestInventoryService() (InventoryService, *mockInventoryRepo) {
	inventoryRepo := newMockInventoryRepo()
	repo := &repository.Repository{
		Rental:    newMockRentalRepo(),
		Inventory: inventoryRepo,
		Teacher:   newMockTeacherRepo(),
	}
	svc := NewInventoryService(repo, zap.NewNop())
	return svc, inventoryRepo
}

// ── Create ──

func TestInventoryService_Create_AparecerNaListagem(t *testing.T) {
	svc, _ := setupTestInventoryService()

	req := &dto.CreateInventoryItemRequest{
		Nome:       "Notebook Dell",
		Tipo:       "Informática",
		Quantidade: 12,
		Descricao:  "Carrinho de notebooks",
	}

	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create deveria funcionar: %v", err)
	}
	if created.ID == 0 {
		t.Error("esperava id atribuído na criação")
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List deveria funcionar: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(items))
	}
	got := items[0]
	if got.Nome != req.Nome || got.Tipo != req.Tipo ||
		got.Quantidade != req.Quantidade || got.Descricao != req.Descricao {
		t.Errorf("campos divergentes na listagem: %+v", got)
	}
}

func TestInventoryService_Create_QuantidadePermissiva(t *testing.T) {
	svc, _ := setupTestInventoryService()

	// quantidade negativa não é barrada: comportamento permissivo preservado
	req := &dto.CreateInventoryItemRequest{Nome: "Cabo HDMI", Tipo: "Acessório", Quantidade: -3}
	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create deveria aceitar quantidade negativa: %v", err)
	}
	if created.Quantidade != -3 {
		t.Errorf("esperava quantidade -3, veio %d", created.Quantidade)
	}
}

// ── Update ──

func TestInventoryService_Update_SubstituicaoCompleta(t *testing.T) {
	svc, inventoryRepo := setupTestInventoryService()
	inventoryRepo.items[1] = &model.InventoryItem{
		ID: 1, Nome: "Projetor Epson", Tipo: "Projeção", Quantidade: 4, Descricao: "Sala 10",
	}
	inventoryRepo.nextID = 2

	req := &dto.UpdateInventoryItemRequest{
		Nome: "Projetor BenQ", Tipo: "Multimídia", Quantidade: 6, Descricao: "Almoxarifado",
	}

	updated, err := svc.Update(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("Update deveria funcionar: %v", err)
	}

	// leitura imediata mostra só os valores novos
	got, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID deveria funcionar: %v", err)
	}
	if got.Nome != "Projetor BenQ" || got.Tipo != "Multimídia" ||
		got.Quantidade != 6 || got.Descricao != "Almoxarifado" {
		t.Errorf("esperava todos os campos substituídos, veio %+v", got)
	}
	if updated.ID != 1 {
		t.Errorf("id não deveria mudar na atualização, veio %d", updated.ID)
	}
}

func TestInventoryService_Update_IDInexistente(t *testing.T) {
	svc, _ := setupTestInventoryService()

	req := &dto.UpdateInventoryItemRequest{Nome: "X", Tipo: "Y", Quantidade: 1}
	_, err := svc.Update(context.Background(), 42, req)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("esperava ErrItemNotFound, veio: %v", err)
	}
}

// ── Delete ──

func TestInventoryService_Delete_Idempotente(t *testing.T) {
	svc, inventoryRepo := setupTestInventoryService()
	inventoryRepo.items[1] = &model.InventoryItem{ID: 1, Nome: "Caixa de som", Tipo: "Áudio", Quantidade: 2}
	inventoryRepo.items[2] = &model.InventoryItem{ID: 2, Nome: "Tripé", Tipo: "Suporte", Quantidade: 5}

	found, err := svc.Delete(context.Background(), 1)
	if err != nil || !found {
		t.Fatalf("Delete deveria achar o item: found=%v err=%v", found, err)
	}

	items, _ := svc.List(context.Background())
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("item excluído não deveria aparecer na listagem: %+v", items)
	}

	// excluir de novo é no-op, sem erro
	found, err = svc.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("segunda exclusão não deveria gerar erro: %v", err)
	}
	if found {
		t.Error("esperava found=false na segunda exclusão")
	}
}

// ── GetByID ──

func TestInventoryService_GetByID_NaoEncontrado(t *testing.T) {
	svc, _ := setupTestInventoryService()

	_, err := svc.GetByID(context.Background(), 7)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("esperava ErrItemNotFound, veio: %v", err)
	}
}
