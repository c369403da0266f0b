package repository

import (
	"context"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"gorm.io/gorm"
)

// FacturaRepository defines data access for generated invoices. Creation
// happens inside a caller-managed transaction so the header and its line
// items commit (or roll back) as one unit.
type FacturaRepository interface {
	Crear(ctx context.Context, tx *gorm.DB, f *model.Factura) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Factura, error)
	ListarPorCliente(ctx context.Context, clienteID uint) ([]model.Factura, error)
	ActualizarPDFPath(ctx context.Context, id uint, path string) error
	// DB exposes the handle for transaction creation in the service layer.
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) DB() *gorm.DB { return r.db }

func (r *facturaRepo) Crear(ctx context.Context, tx *gorm.DB, f *model.Factura) error {
	return tx.WithContext(ctx).Create(f).Error
}

func (r *facturaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalles_factura.id ASC") }).
		Preload("Detalles.Producto").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facturaRepo) ListarPorCliente(ctx context.Context, clienteID uint) ([]model.Factura, error) {
	var facturas []model.Factura
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha_generacion DESC").
		Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) ActualizarPDFPath(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).Update("pdf_path", path).Error
}
