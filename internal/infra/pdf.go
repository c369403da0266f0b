package infra

// pdf.go — printable factura rendering with go-pdf/fpdf.
// A4 portrait: client header, generation date, frozen line table
// (producto, cantidad, precio unitario, subtotal) and a bold grand total.
// The output file is saved to storagePath/factura_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateFacturaPDF renders a stored factura. storagePath is created if
// needed; returns the path of the written file.
func GenerateFacturaPDF(factura *model.Factura, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%d.pdf", factura.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, fmt.Sprintf("Factura N° %d", factura.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if factura.Cliente != nil {
		pdf.CellFormat(contentW, 6, "Cliente: "+factura.Cliente.Nombre, "", 1, "L", false, 0, "")
		if factura.Cliente.Direccion != nil && *factura.Cliente.Direccion != "" {
			pdf.CellFormat(contentW, 6, "Dirección: "+*factura.Cliente.Direccion, "", 1, "L", false, 0, "")
		}
	}
	pdf.CellFormat(contentW, 6, "Fecha: "+factura.FechaGeneracion.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // producto
	col2 := contentW * 0.14 // cantidad
	col3 := contentW * 0.20 // precio unitario
	col4 := contentW * 0.20 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "P. Unitario", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, detalle := range factura.Detalles {
		descripcion := ""
		if detalle.Producto != nil {
			descripcion = detalle.Producto.Descripcion
		}
		if len(descripcion) > 48 {
			descripcion = descripcion[:47] + "…"
		}
		pdf.CellFormat(col1, 6, descripcion, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", detalle.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+detalle.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+detalle.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+factura.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
