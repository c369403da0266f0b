package model

import "time"

// Usuario stores system users with role-based access.
// Rol: "operador" | "administrador"
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Correo       string `gorm:"uniqueIndex;not null"`
	Nombre       string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
