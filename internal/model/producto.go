package model

import "time"

// Producto is a catalog item referenced by menu lines. Classification is a
// trio of lookup references; pricing lives in the Precio history table, never
// on the product row itself.
type Producto struct {
	ID             uint   `gorm:"primaryKey"`
	Descripcion    string `gorm:"not null;index"`
	PresentacionID *uint  `gorm:"index"`
	CategoriaID    *uint  `gorm:"index"`
	SubcategoriaID *uint  `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Presentacion *Presentacion `gorm:"foreignKey:PresentacionID"`
	Categoria    *Categoria    `gorm:"foreignKey:CategoriaID"`
	Subcategoria *Subcategoria `gorm:"foreignKey:SubcategoriaID"`
	Precios      []Precio      `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }
