package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/internal/model"
	"github.com/Sandrogaltran08/cief/internal/repository"
)

func setupTestExportService() (ExportService, *mockRentalRepo, *mockInventoryRepo) {
	rentalRepo := newMockRentalRepo()
	inventoryRepo := newMockInventoryRepo()
	repo := &repository.Repository{
		Rental:    rentalRepo,
		Inventory: inventoryRepo,
		Teacher:   newMockTeacherRepo(),
	}
	svc := NewExportService(repo, zap.NewNop())
	return svc, rentalRepo, inventoryRepo
}

// ── PDF do inventário ──

func TestExportService_InventoryPDF_SemItens(t *testing.T) {
	svc, _, _ := setupTestExportService()

	// com zero linhas o documento sai válido, só título e cabeçalho
	buf, filename, err := svc.InventoryPDF(context.Background())
	if err != nil {
		t.Fatalf("InventoryPDF deveria funcionar sem itens: %v", err)
	}
	if filename != "inventario.pdf" {
		t.Errorf("esperava nome inventario.pdf, veio %s", filename)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("saída deveria ser um documento PDF válido")
	}
}

func TestExportService_InventoryPDF_ComItens(t *testing.T) {
	svc, _, inventoryRepo := setupTestExportService()
	inventoryRepo.items[1] = &model.InventoryItem{
		ID: 1, Nome: "Projetor", Tipo: "Multimídia", Quantidade: 4, Descricao: "Sala 10",
	}

	buf, _, err := svc.InventoryPDF(context.Background())
	if err != nil {
		t.Fatalf("InventoryPDF deveria funcionar: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("documento não deveria ser vazio")
	}
}

// ── PDF de locações ──

func TestExportService_RentalsPDF_PaginaAoPassarDaMargem(t *testing.T) {
	svc, rentalRepo, _ := setupTestExportService()

	// linhas suficientes para estourar a primeira página
	for i := uint(1); i <= 60; i++ {
		rentalRepo.rentals[i] = &model.Rental{
			ID: i, Professor: fmt.Sprintf("Professor %d", i), Materia: "Física",
			Sala: "Lab 2", Turma: "3B", DataHora: "2025-09-17 14:30:00",
			TempoUso: "2 aulas", Equipamento: "Projetor", Status: model.StatusEmUso,
		}
	}
	rentalRepo.nextID = 61

	buf, filename, err := svc.RentalsPDF(context.Background())
	if err != nil {
		t.Fatalf("RentalsPDF deveria funcionar: %v", err)
	}
	if filename != "locacoes.pdf" {
		t.Errorf("esperava nome locacoes.pdf, veio %s", filename)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("saída deveria ser um documento PDF válido")
	}

	// o dicionário de cada página sai sem compressão: 60 linhas com passo
	// de 6mm não cabem numa página A4, então tem que haver mais de uma
	pages := bytes.Count(buf.Bytes(), []byte("/Type /Page")) - 1 // desconta /Type /Pages
	if pages < 2 {
		t.Errorf("esperava pelo menos 2 páginas, veio %d", pages)
	}
}

// ── XLSX do inventário ──

func TestExportService_InventoryXLSX(t *testing.T) {
	svc, _, inventoryRepo := setupTestExportService()
	inventoryRepo.items[1] = &model.InventoryItem{
		ID: 1, Nome: "Notebook", Tipo: "Informática", Quantidade: 12, Descricao: "Carrinho",
	}

	buf, filename, err := svc.InventoryXLSX(context.Background())
	if err != nil {
		t.Fatalf("InventoryXLSX deveria funcionar: %v", err)
	}
	if filename != "inventario.xlsx" {
		t.Errorf("esperava nome inventario.xlsx, veio %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("planilha deveria abrir: %v", err)
	}
	defer f.Close()

	nome, err := f.GetCellValue("Inventário", "B2")
	if err != nil {
		t.Fatalf("erro ao ler célula: %v", err)
	}
	if nome != "Notebook" {
		t.Errorf("esperava Notebook em B2, veio %q", nome)
	}
}
