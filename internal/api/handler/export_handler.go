package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sandrogaltran08/cief/internal/service"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler downloads de relatórios
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler cria o ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// InventoryPDF relatório tabular do inventário
// GET /inventory/export/pdf
func (h *ExportHandler) InventoryPDF(c *gin.Context) {
	buf, filename, err := h.exportSvc.InventoryPDF(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao gerar relatório")
		return
	}

	writeDownload(c, pdfContentType, filename, buf.Bytes())
}

// RentalsPDF relatório de locações, uma linha por registro
// GET /rentals/export/pdf
func (h *ExportHandler) RentalsPDF(c *gin.Context) {
	buf, filename, err := h.exportSvc.RentalsPDF(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao gerar relatório")
		return
	}

	writeDownload(c, pdfContentType, filename, buf.Bytes())
}

// InventoryXLSX planilha do inventário
// GET /inventory/export/xlsx
func (h *ExportHandler) InventoryXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.InventoryXLSX(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "erro ao gerar planilha")
		return
	}

	writeDownload(c, xlsxContentType, filename, buf.Bytes())
}

// writeDownload define os cabeçalhos de download e escreve o conteúdo
func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
