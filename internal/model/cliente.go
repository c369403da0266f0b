package model

import "time"

// Cliente is a catering customer: the owner of weekly menu assignments
// and the party billed by generated facturas.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null;index"`
	Direccion *string
	Telefono  *string
	Correo    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (Cliente) TableName() string { return "clientes" }
