package service

import (
	"context"
	"errors"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
)

// ProductoService handles the product catalog and its price history.
// Prices are append-only: an update never touches existing rows, it
// registers a new one with a later fecha_actualizacion.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	RegistrarPrecio(ctx context.Context, productoID uint, req dto.RegistrarPrecioRequest) (*dto.PrecioItem, error)
	HistorialPrecios(ctx context.Context, productoID uint) (*dto.HistorialPreciosResponse, error)
}

type productoService struct {
	productos repository.ProductoRepository
	precios   repository.PrecioRepository
}

func NewProductoService(productos repository.ProductoRepository, precios repository.PrecioRepository) ProductoService {
	return &productoService{productos: productos, precios: precios}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Descripcion:    req.Descripcion,
		PresentacionID: req.PresentacionID,
		CategoriaID:    req.CategoriaID,
		SubcategoriaID: req.SubcategoriaID,
	}
	if err := s.productos.Crear(ctx, p); err != nil {
		return nil, err
	}

	// Optional initial price: first row of the history.
	if req.PrecioUnidad != nil {
		precio := &model.Precio{
			ProductoID:         p.ID,
			PrecioUnidad:       *req.PrecioUnidad,
			FechaActualizacion: time.Now(),
		}
		if req.PrecioCosto != nil {
			precio.PrecioCosto = *req.PrecioCosto
		}
		if err := s.precios.Registrar(ctx, precio); err != nil {
			return nil, err
		}
	}
	return s.buildResponse(ctx, p)
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return s.buildResponse(ctx, p)
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		r, err := s.buildResponse(ctx, &productos[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	p.Descripcion = req.Descripcion
	p.PresentacionID = req.PresentacionID
	p.CategoriaID = req.CategoriaID
	p.SubcategoriaID = req.SubcategoriaID
	if err := s.productos.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, p)
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.productos.ObtenerPorID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	return s.productos.Eliminar(ctx, id)
}

// RegistrarPrecio appends one row to the product's history. Existing rows
// are never modified; facturas already generated keep their snapshots.
func (s *productoService) RegistrarPrecio(ctx context.Context, productoID uint, req dto.RegistrarPrecioRequest) (*dto.PrecioItem, error) {
	if _, err := s.productos.ObtenerPorID(ctx, productoID); err != nil {
		return nil, errors.New("producto no encontrado")
	}
	precio := &model.Precio{
		ProductoID:         productoID,
		PrecioUnidad:       req.PrecioUnidad,
		PrecioCosto:        req.PrecioCosto,
		FechaActualizacion: time.Now(),
	}
	if err := s.precios.Registrar(ctx, precio); err != nil {
		return nil, err
	}
	return &dto.PrecioItem{
		ID:                 precio.ID,
		PrecioUnidad:       precio.PrecioUnidad,
		PrecioCosto:        precio.PrecioCosto,
		FechaActualizacion: precio.FechaActualizacion.Format(time.RFC3339),
	}, nil
}

func (s *productoService) HistorialPrecios(ctx context.Context, productoID uint) (*dto.HistorialPreciosResponse, error) {
	if _, err := s.productos.ObtenerPorID(ctx, productoID); err != nil {
		return nil, errors.New("producto no encontrado")
	}
	precios, err := s.precios.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PrecioItem, len(precios))
	for i, p := range precios {
		items[i] = dto.PrecioItem{
			ID:                 p.ID,
			PrecioUnidad:       p.PrecioUnidad,
			PrecioCosto:        p.PrecioCosto,
			FechaActualizacion: p.FechaActualizacion.Format(time.RFC3339),
		}
	}
	return &dto.HistorialPreciosResponse{ProductoID: productoID, Data: items}, nil
}

func (s *productoService) buildResponse(ctx context.Context, p *model.Producto) (*dto.ProductoResponse, error) {
	actual, err := s.precios.ResolverPrecioActual(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoResponse{
		ID:             p.ID,
		Descripcion:    p.Descripcion,
		PresentacionID: p.PresentacionID,
		CategoriaID:    p.CategoriaID,
		SubcategoriaID: p.SubcategoriaID,
		PrecioUnidad:   actual.PrecioUnidad,
		PrecioCosto:    actual.PrecioCosto,
	}, nil
}
