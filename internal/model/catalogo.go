package model

// Lookup tables used to classify products. Pure reference data — no
// lifecycle beyond create/list.

type Categoria struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
}

func (Categoria) TableName() string { return "categorias" }

// Subcategoria belongs to a Categoria.
type Subcategoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"not null"`
	CategoriaID uint   `gorm:"not null;index"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Subcategoria) TableName() string { return "subcategorias" }

// Presentacion describes the serving format of a product (bandeja, porción…).
type Presentacion struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
}

func (Presentacion) TableName() string { return "presentaciones" }
