package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Precio is one entry in a product's price history. Rows are append-only:
// updating a price means inserting a new row with a later
// fecha_actualizacion. The current price of a product is the row with the
// maximum fecha_actualizacion (ties broken by highest id).
type Precio struct {
	ID                 uint            `gorm:"primaryKey"`
	ProductoID         uint            `gorm:"not null;index"`
	PrecioUnidad       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioCosto        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaActualizacion time.Time       `gorm:"not null;index"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Precio) TableName() string { return "precios" }
