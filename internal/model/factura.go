package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura is a billing document generated from a client's menu assignments
// over a chosen set of weekdays. Header and line items are created together
// in one transaction and are immutable afterwards: unit prices are snapshots
// taken at generation time, never live references to the price history.
type Factura struct {
	ID              uint `gorm:"primaryKey"`
	ClienteID       uint `gorm:"not null;index"`
	FechaGeneracion time.Time
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// PDFPath is set by the async PDF worker once the document is rendered.
	PDFPath   *string `gorm:"column:pdf_path"`
	CreatedAt time.Time

	Cliente  *Cliente         `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleFactura `gorm:"foreignKey:FacturaID"`
}

func (Factura) TableName() string { return "facturas" }

// DetalleFactura is one frozen invoice line.
// Invariant: Subtotal = Cantidad × PrecioUnitario at creation time.
type DetalleFactura struct {
	ID             uint            `gorm:"primaryKey"`
	FacturaID      uint            `gorm:"not null;index"`
	ProductoID     uint            `gorm:"not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleFactura) TableName() string { return "detalles_factura" }
