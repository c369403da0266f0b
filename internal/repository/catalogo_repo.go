package repository

import (
	"context"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository groups the three product-classification lookups.
type CatalogoRepository interface {
	CrearCategoria(ctx context.Context, c *model.Categoria) error
	ListarCategorias(ctx context.Context) ([]model.Categoria, error)
	CrearSubcategoria(ctx context.Context, s *model.Subcategoria) error
	ListarSubcategorias(ctx context.Context, categoriaID *uint) ([]model.Subcategoria, error)
	CrearPresentacion(ctx context.Context, p *model.Presentacion) error
	ListarPresentaciones(ctx context.Context) ([]model.Presentacion, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CrearCategoria(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) ListarCategorias(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *catalogoRepo) CrearSubcategoria(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *catalogoRepo) ListarSubcategorias(ctx context.Context, categoriaID *uint) ([]model.Subcategoria, error) {
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}
	var subcategorias []model.Subcategoria
	err := q.Find(&subcategorias).Error
	return subcategorias, err
}

func (r *catalogoRepo) CrearPresentacion(ctx context.Context, p *model.Presentacion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogoRepo) ListarPresentaciones(ctx context.Context) ([]model.Presentacion, error) {
	var presentaciones []model.Presentacion
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&presentaciones).Error
	return presentaciones, err
}
