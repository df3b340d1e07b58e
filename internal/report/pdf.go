// Package report gera os documentos exportáveis (PDF e XLSX) a partir
// de sequências de linhas já consultadas. As funções são puras: não
// guardam estado e repassam os erros da biblioteca de renderização.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Sandrogaltran08/cief/internal/model"
)

// Dimensões em milímetros de uma página A4 retrato com margem de 10.
const (
	lineStartY   = 20.0
	linePitch    = 6.0
	lineBottomY  = 280.0
	tableRowH    = 8.0
)

// larguras das colunas da tabela de inventário (total 190)
var inventoryColWidths = [5]float64{15, 55, 40, 25, 55}

var inventoryHeader = [5]string{"ID", "Nome", "Tipo", "Quantidade", "Descrição"}

// InventoryTable monta o relatório tabular do inventário: título,
// cabeçalho destacado com grade e uma linha por item, com paginação
// automática. Com zero itens o documento sai válido só com título
// e cabeçalho.
func InventoryTable(items []model.InventoryItem) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Título
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, tr("Relatório de Inventário — CIEF"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Cabeçalho: negrito, fundo colorido, texto centralizado, grade
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range inventoryHeader {
		pdf.CellFormat(inventoryColWidths[i], tableRowH, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Linhas de dados
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range items {
		cells := [5]string{
			fmt.Sprintf("%d", item.ID),
			item.Nome,
			item.Tipo,
			fmt.Sprintf("%d", item.Quantidade),
			item.Descricao,
		}
		for i, c := range cells {
			pdf.CellFormat(inventoryColWidths[i], tableRowH, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RentalLines monta o relatório de locações: uma linha de fonte fixa
// por locação, com todos os campos concatenados. O cursor começa perto
// do topo e desce em passo fixo; ao passar da margem inferior abre nova
// página e reposiciona cursor e fonte.
func RentalLines(rentals []model.Rental) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 9)

	y := lineStartY
	for _, r := range rentals {
		if y > lineBottomY {
			pdf.AddPage()
			pdf.SetFont("Courier", "", 9)
			y = lineStartY
		}
		line := fmt.Sprintf("%d | %s | %s | %s | %s | %s | %s | %s | %s",
			r.ID, r.Professor, r.Materia, r.Sala, r.Turma,
			r.DataHora, r.TempoUso, r.Equipamento, r.Status)
		pdf.Text(10, y, tr(line))
		y += linePitch
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
