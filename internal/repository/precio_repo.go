package repository

import (
	"context"
	"errors"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PrecioActual is the resolved current price of a product.
type PrecioActual struct {
	PrecioUnidad decimal.Decimal
	PrecioCosto  decimal.Decimal
}

// PrecioRepository is the read/append contract over the immutable price
// history. ResolverPrecioActual is the single price-resolution capability
// injected everywhere a "current price" is needed, so tests can substitute
// a double.
type PrecioRepository interface {
	Registrar(ctx context.Context, p *model.Precio) error
	// ResolverPrecioActual returns the price record with the maximum
	// fecha_actualizacion for the product (ties broken by highest id).
	// A product with no history resolves to zero prices — not an error.
	ResolverPrecioActual(ctx context.Context, productoID uint) (PrecioActual, error)
	ListarPorProducto(ctx context.Context, productoID uint) ([]model.Precio, error)
}

type precioRepo struct{ db *gorm.DB }

func NewPrecioRepository(db *gorm.DB) PrecioRepository { return &precioRepo{db: db} }

func (r *precioRepo) Registrar(ctx context.Context, p *model.Precio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *precioRepo) ResolverPrecioActual(ctx context.Context, productoID uint) (PrecioActual, error) {
	var p model.Precio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_actualizacion DESC, id DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PrecioActual{PrecioUnidad: decimal.Zero, PrecioCosto: decimal.Zero}, nil
	}
	if err != nil {
		return PrecioActual{}, err
	}
	return PrecioActual{PrecioUnidad: p.PrecioUnidad, PrecioCosto: p.PrecioCosto}, nil
}

func (r *precioRepo) ListarPorProducto(ctx context.Context, productoID uint) ([]model.Precio, error) {
	var precios []model.Precio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("fecha_actualizacion DESC, id DESC").
		Find(&precios).Error
	return precios, err
}
