package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
)

// MenuService manages reusable menu templates. Menus carry quantities and
// the es_extra flag per line but never prices — prices resolve at billing
// time from the product history.
type MenuService interface {
	Crear(ctx context.Context, req dto.CrearMenuRequest) (*dto.MenuResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MenuResponse, error)
	Listar(ctx context.Context) ([]dto.MenuResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarMenuRequest) (*dto.MenuResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type menuService struct {
	menus     repository.MenuRepository
	productos repository.ProductoRepository
	precios   repository.PrecioRepository
}

func NewMenuService(
	menus repository.MenuRepository,
	productos repository.ProductoRepository,
	precios repository.PrecioRepository,
) MenuService {
	return &menuService{menus: menus, productos: productos, precios: precios}
}

func (s *menuService) Crear(ctx context.Context, req dto.CrearMenuRequest) (*dto.MenuResponse, error) {
	detalles, err := s.validarDetalles(ctx, req.Detalles)
	if err != nil {
		return nil, err
	}
	m := &model.Menu{
		Nombre:        req.Nombre,
		FechaCreacion: time.Now(),
		Detalles:      detalles,
	}
	if err := s.menus.Crear(ctx, m); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, m.ID)
}

func (s *menuService) ObtenerPorID(ctx context.Context, id uint) (*dto.MenuResponse, error) {
	m, err := s.menus.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("menú no encontrado")
	}
	return s.buildResponse(ctx, m)
}

func (s *menuService) Listar(ctx context.Context) ([]dto.MenuResponse, error) {
	menus, err := s.menus.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		r, err := s.buildResponse(ctx, &menus[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

// Actualizar replaces the menu's name and whole line set in one
// transaction; there is no per-line patching.
func (s *menuService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMenuRequest) (*dto.MenuResponse, error) {
	if _, err := s.menus.ObtenerPorID(ctx, id); err != nil {
		return nil, errors.New("menú no encontrado")
	}
	detalles, err := s.validarDetalles(ctx, req.Detalles)
	if err != nil {
		return nil, err
	}
	if err := s.menus.ReemplazarDetalles(ctx, id, req.Nombre, detalles); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *menuService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.menus.ObtenerPorID(ctx, id); err != nil {
		return errors.New("menú no encontrado")
	}
	return s.menus.Eliminar(ctx, id)
}

func (s *menuService) validarDetalles(ctx context.Context, reqs []dto.DetalleMenuRequest) ([]model.DetalleMenu, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: el menú necesita al menos un producto", ErrDatosInvalidos)
	}
	detalles := make([]model.DetalleMenu, 0, len(reqs))
	for _, d := range reqs {
		if d.Cantidad < 1 {
			return nil, fmt.Errorf("%w: cantidad inválida para el producto %d", ErrDatosInvalidos, d.ProductoID)
		}
		if _, err := s.productos.ObtenerPorID(ctx, d.ProductoID); err != nil {
			return nil, fmt.Errorf("%w: producto %d no existe", ErrDatosInvalidos, d.ProductoID)
		}
		detalles = append(detalles, model.DetalleMenu{
			ProductoID: d.ProductoID,
			Cantidad:   d.Cantidad,
			EsExtra:    d.EsExtra,
		})
	}
	return detalles, nil
}

func (s *menuService) buildResponse(ctx context.Context, m *model.Menu) (*dto.MenuResponse, error) {
	detalles := make([]dto.DetalleMenuResponse, 0, len(m.Detalles))
	for _, d := range m.Detalles {
		actual, err := s.precios.ResolverPrecioActual(ctx, d.ProductoID)
		if err != nil {
			return nil, err
		}
		descripcion := ""
		if d.Producto != nil {
			descripcion = d.Producto.Descripcion
		}
		detalles = append(detalles, dto.DetalleMenuResponse{
			ID:           d.ID,
			ProductoID:   d.ProductoID,
			Producto:     descripcion,
			Cantidad:     d.Cantidad,
			EsExtra:      d.EsExtra,
			PrecioUnidad: actual.PrecioUnidad,
			PrecioCosto:  actual.PrecioCosto,
		})
	}
	return &dto.MenuResponse{
		ID:            m.ID,
		Nombre:        m.Nombre,
		FechaCreacion: m.FechaCreacion.Format(time.RFC3339),
		Detalles:      detalles,
	}, nil
}
