package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleMenuRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
	Cantidad   int  `json:"cantidad"    validate:"required,min=1"`
	EsExtra    bool `json:"es_extra"`
}

type CrearMenuRequest struct {
	Nombre   string               `json:"nombre"   validate:"required,min=2,max=120"`
	Detalles []DetalleMenuRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ActualizarMenuRequest replaces the menu's name and its whole detail set.
type ActualizarMenuRequest struct {
	Nombre   string               `json:"nombre"   validate:"required,min=2,max=120"`
	Detalles []DetalleMenuRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DetalleMenuResponse enriches each line with the product description and its
// current prices, the shape the menu editor expects.
type DetalleMenuResponse struct {
	ID           uint            `json:"id"`
	ProductoID   uint            `json:"producto_id"`
	Producto     string          `json:"producto"`
	Cantidad     int             `json:"cantidad"`
	EsExtra      bool            `json:"es_extra"`
	PrecioUnidad decimal.Decimal `json:"precio_unidad"`
	PrecioCosto  decimal.Decimal `json:"precio_costo"`
}

type MenuResponse struct {
	ID            uint                  `json:"id"`
	Nombre        string                `json:"nombre"`
	FechaCreacion string                `json:"fecha_creacion"`
	Detalles      []DetalleMenuResponse `json:"detalles"`
}
