package model

import "time"

// Menu is a reusable named template of product lines. It is not tied to any
// client or date; clients reference menus through AsignacionMenu.
type Menu struct {
	ID            uint   `gorm:"primaryKey"`
	Nombre        string `gorm:"not null"`
	FechaCreacion time.Time

	Detalles []DetalleMenu `gorm:"foreignKey:MenuID"`
}

func (Menu) TableName() string { return "menus" }

// DetalleMenu is one (producto, cantidad, es_extra) line inside a menu.
// Lines are owned exclusively by their menu: a menu update replaces the
// whole set. EsExtra marks add-ons billed separately from the base items.
type DetalleMenu struct {
	ID         uint `gorm:"primaryKey"`
	MenuID     uint `gorm:"not null;index"`
	ProductoID uint `gorm:"not null;index"`
	Cantidad   int  `gorm:"not null"`
	EsExtra    bool `gorm:"not null;default:false"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleMenu) TableName() string { return "detalles_menu" }
