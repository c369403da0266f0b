package repository

import (
	"context"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"gorm.io/gorm"
)

// MenuRepository defines data access for menu templates and their lines.
type MenuRepository interface {
	Crear(ctx context.Context, m *model.Menu) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Menu, error)
	Listar(ctx context.Context) ([]model.Menu, error)
	// ObtenerDetalles returns the menu's lines in storage (insertion) order.
	// Returns gorm.ErrRecordNotFound when the menu itself does not exist.
	ObtenerDetalles(ctx context.Context, menuID uint) ([]model.DetalleMenu, error)
	// ReemplazarDetalles renames the menu and swaps its whole line set in
	// one transaction: delete existing rows, insert the new ones.
	ReemplazarDetalles(ctx context.Context, menuID uint, nombre string, detalles []model.DetalleMenu) error
	Eliminar(ctx context.Context, id uint) error
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) Crear(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Menu, error) {
	var m model.Menu
	err := r.db.WithContext(ctx).
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalles_menu.id ASC") }).
		Preload("Detalles.Producto").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) Listar(ctx context.Context) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.WithContext(ctx).
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalles_menu.id ASC") }).
		Preload("Detalles.Producto").
		Order("id ASC").
		Find(&menus).Error
	return menus, err
}

func (r *menuRepo) ObtenerDetalles(ctx context.Context, menuID uint) ([]model.DetalleMenu, error) {
	// First confirms menu existence so a vanished menu surfaces as not-found
	// instead of an empty line set.
	var m model.Menu
	if err := r.db.WithContext(ctx).Select("id").First(&m, menuID).Error; err != nil {
		return nil, err
	}
	var detalles []model.DetalleMenu
	err := r.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("id ASC").
		Preload("Producto").
		Find(&detalles).Error
	return detalles, err
}

func (r *menuRepo) ReemplazarDetalles(ctx context.Context, menuID uint, nombre string, detalles []model.DetalleMenu) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Menu{}).Where("id = ?", menuID).Update("nombre", nombre).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&model.DetalleMenu{}).Error; err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].ID = 0
			detalles[i].MenuID = menuID
		}
		return tx.Create(&detalles).Error
	})
}

func (r *menuRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&model.DetalleMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Menu{}, id).Error
	})
}
