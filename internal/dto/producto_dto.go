package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Descripcion    string `json:"descripcion" validate:"required,min=2,max=200"`
	PresentacionID *uint  `json:"presentacion_id"`
	CategoriaID    *uint  `json:"categoria_id"`
	SubcategoriaID *uint  `json:"subcategoria_id"`
	// Precio inicial opcional — cuando se envía, se registra como primera
	// entrada del historial.
	PrecioUnidad *decimal.Decimal `json:"precio_unidad"`
	PrecioCosto  *decimal.Decimal `json:"precio_costo"`
}

type ActualizarProductoRequest struct {
	Descripcion    string `json:"descripcion" validate:"required,min=2,max=200"`
	PresentacionID *uint  `json:"presentacion_id"`
	CategoriaID    *uint  `json:"categoria_id"`
	SubcategoriaID *uint  `json:"subcategoria_id"`
}

// RegistrarPrecioRequest appends one row to a product's price history.
type RegistrarPrecioRequest struct {
	PrecioUnidad decimal.Decimal `json:"precio_unidad" validate:"required"`
	PrecioCosto  decimal.Decimal `json:"precio_costo"  validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoResponse carries the current (latest) prices resolved from the
// history; both are zero when the product has no price records yet.
type ProductoResponse struct {
	ID             uint            `json:"id"`
	Descripcion    string          `json:"descripcion"`
	PresentacionID *uint           `json:"presentacion_id"`
	CategoriaID    *uint           `json:"categoria_id"`
	SubcategoriaID *uint           `json:"subcategoria_id"`
	PrecioUnidad   decimal.Decimal `json:"precio_unidad"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
}

type PrecioItem struct {
	ID                 uint            `json:"id"`
	PrecioUnidad       decimal.Decimal `json:"precio_unidad"`
	PrecioCosto        decimal.Decimal `json:"precio_costo"`
	FechaActualizacion string          `json:"fecha_actualizacion"`
}

type HistorialPreciosResponse struct {
	ProductoID uint         `json:"producto_id"`
	Data       []PrecioItem `json:"data"`
}
