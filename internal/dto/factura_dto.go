package dto

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ClienteID tolerates both JSON forms the frontend has historically sent:
// a number (12) or a numeric string ("12"). Coercion happens here, once,
// at the I/O boundary — never inside aggregation logic.
type ClienteID uint

func (c *ClienteID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("cliente id vacío")
	}
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("cliente id no numérico: %q", b)
	}
	*c = ClienteID(n)
	return nil
}

// GenerarFacturaRequest is the body of POST /v1/facturas.
// Dias carries weekday labels (Lunes … Domingo).
type GenerarFacturaRequest struct {
	ClienteID ClienteID `json:"clientId"`
	Dias      []string  `json:"dias"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteRef struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// LineaFactura is one product line inside a day's menu breakdown.
type LineaFactura struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	EsExtra        bool            `json:"esExtra"`
}

// DetalleDiaFactura is the per-day, per-menu breakdown returned to the caller.
// Subtotal covers base lines only; SubtotalExtras covers es_extra lines;
// Total = Subtotal + SubtotalExtras.
type DetalleDiaFactura struct {
	Day            string          `json:"day"`
	MenuName       string          `json:"menuName"`
	MenuID         uint            `json:"menuId"`
	Detalles       []LineaFactura  `json:"detalles"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	SubtotalExtras decimal.Decimal `json:"subtotalExtras"`
	Total          decimal.Decimal `json:"total"`
}

// FacturaSummary is the structured result of a successful generation.
type FacturaSummary struct {
	FacturaID       uint                `json:"facturaId"`
	Cliente         ClienteRef          `json:"cliente"`
	FechaGeneracion string              `json:"fechaGeneracion"`
	Details         []DetalleDiaFactura `json:"details"`
	Total           decimal.Decimal     `json:"total"`
}

// FacturaListItem is returned by GET /v1/facturas?cliente_id=N.
type FacturaListItem struct {
	ID              uint            `json:"id"`
	ClienteID       uint            `json:"cliente_id"`
	FechaGeneracion string          `json:"fecha_generacion"`
	Total           decimal.Decimal `json:"total"`
	PDFUrl          *string         `json:"pdf_url,omitempty"`
}

// DetalleFacturaResponse is a frozen line read back from a stored invoice.
type DetalleFacturaResponse struct {
	ProductoID     uint            `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// FacturaResponse is the full readback of a stored invoice (GET /v1/facturas/:id).
type FacturaResponse struct {
	ID              uint                     `json:"id"`
	Cliente         ClienteRef               `json:"cliente"`
	FechaGeneracion string                   `json:"fecha_generacion"`
	Total           decimal.Decimal          `json:"total"`
	Detalles        []DetalleFacturaResponse `json:"detalles"`
	PDFUrl          *string                  `json:"pdf_url,omitempty"`
}
