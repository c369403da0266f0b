package repository

import (
	"context"

	"github.com/Joecr98/sistema-precios-menus/internal/model"

	"gorm.io/gorm"
)

// AsignacionRepository defines data access for per-client weekly menu
// assignments.
type AsignacionRepository interface {
	ListarPorCliente(ctx context.Context, clienteID uint) ([]model.AsignacionMenu, error)
	// ListarPorClienteYDias returns the assignments configured for the given
	// weekdays, menu preloaded. Days without an assignment are simply absent.
	ListarPorClienteYDias(ctx context.Context, clienteID uint, dias []string) ([]model.AsignacionMenu, error)
	// ReemplazarTodo swaps the client's whole configuration in one
	// transaction: delete existing rows, insert the new set. Wrapping both
	// steps avoids the observable empty-configuration window a bare
	// delete-then-insert would leave.
	ReemplazarTodo(ctx context.Context, clienteID uint, asignaciones []model.AsignacionMenu) error
	EliminarUna(ctx context.Context, clienteID, menuID uint, diaSemana string) error
}

type asignacionRepo struct{ db *gorm.DB }

func NewAsignacionRepository(db *gorm.DB) AsignacionRepository { return &asignacionRepo{db: db} }

func (r *asignacionRepo) ListarPorCliente(ctx context.Context, clienteID uint) ([]model.AsignacionMenu, error) {
	var asignaciones []model.AsignacionMenu
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Preload("Menu").
		Find(&asignaciones).Error
	return asignaciones, err
}

func (r *asignacionRepo) ListarPorClienteYDias(ctx context.Context, clienteID uint, dias []string) ([]model.AsignacionMenu, error) {
	var asignaciones []model.AsignacionMenu
	err := r.db.WithContext(ctx).
		Where("cliente_id = ? AND dia_semana IN ?", clienteID, dias).
		Preload("Menu").
		Find(&asignaciones).Error
	return asignaciones, err
}

func (r *asignacionRepo) ReemplazarTodo(ctx context.Context, clienteID uint, asignaciones []model.AsignacionMenu) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_id = ?", clienteID).Delete(&model.AsignacionMenu{}).Error; err != nil {
			return err
		}
		if len(asignaciones) == 0 {
			return nil
		}
		for i := range asignaciones {
			asignaciones[i].ID = 0
			asignaciones[i].ClienteID = clienteID
		}
		return tx.Create(&asignaciones).Error
	})
}

func (r *asignacionRepo) EliminarUna(ctx context.Context, clienteID, menuID uint, diaSemana string) error {
	return r.db.WithContext(ctx).
		Where("cliente_id = ? AND menu_id = ? AND dia_semana = ?", clienteID, menuID, diaSemana).
		Delete(&model.AsignacionMenu{}).Error
}
