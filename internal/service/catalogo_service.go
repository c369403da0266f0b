package service

import (
	"context"
	"fmt"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
)

// CatalogoService manages the product classification lookups and feeds the
// product form's dropdowns.
type CatalogoService interface {
	CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.OpcionResponse, error)
	ListarCategorias(ctx context.Context) ([]dto.OpcionResponse, error)
	CrearSubcategoria(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error)
	ListarSubcategorias(ctx context.Context, categoriaID *uint) ([]dto.SubcategoriaResponse, error)
	CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.OpcionResponse, error)
	ListarPresentaciones(ctx context.Context) ([]dto.OpcionResponse, error)
	SelectOptions(ctx context.Context) (*dto.SelectOptionsResponse, error)
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.OpcionResponse, error) {
	c := &model.Categoria{Nombre: req.Nombre}
	if err := s.repo.CrearCategoria(ctx, c); err != nil {
		return nil, err
	}
	return &dto.OpcionResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]dto.OpcionResponse, error) {
	categorias, err := s.repo.ListarCategorias(ctx)
	if err != nil {
		return nil, err
	}
	return toOpciones(categorias, func(c model.Categoria) (uint, string) { return c.ID, c.Nombre }), nil
}

func (s *catalogoService) CrearSubcategoria(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	categorias, err := s.repo.ListarCategorias(ctx)
	if err != nil {
		return nil, err
	}
	existe := false
	for _, c := range categorias {
		if c.ID == req.CategoriaID {
			existe = true
			break
		}
	}
	if !existe {
		return nil, fmt.Errorf("%w: categoría %d no existe", ErrDatosInvalidos, req.CategoriaID)
	}

	sub := &model.Subcategoria{Nombre: req.Nombre, CategoriaID: req.CategoriaID}
	if err := s.repo.CrearSubcategoria(ctx, sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoriaResponse{ID: sub.ID, Nombre: sub.Nombre, CategoriaID: sub.CategoriaID}, nil
}

func (s *catalogoService) ListarSubcategorias(ctx context.Context, categoriaID *uint) ([]dto.SubcategoriaResponse, error) {
	subcategorias, err := s.repo.ListarSubcategorias(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SubcategoriaResponse, len(subcategorias))
	for i, sub := range subcategorias {
		resp[i] = dto.SubcategoriaResponse{ID: sub.ID, Nombre: sub.Nombre, CategoriaID: sub.CategoriaID}
	}
	return resp, nil
}

func (s *catalogoService) CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.OpcionResponse, error) {
	p := &model.Presentacion{Nombre: req.Nombre}
	if err := s.repo.CrearPresentacion(ctx, p); err != nil {
		return nil, err
	}
	return &dto.OpcionResponse{ID: p.ID, Nombre: p.Nombre}, nil
}

func (s *catalogoService) ListarPresentaciones(ctx context.Context) ([]dto.OpcionResponse, error) {
	presentaciones, err := s.repo.ListarPresentaciones(ctx)
	if err != nil {
		return nil, err
	}
	return toOpciones(presentaciones, func(p model.Presentacion) (uint, string) { return p.ID, p.Nombre }), nil
}

// SelectOptions returns the three lookup lists in one response.
func (s *catalogoService) SelectOptions(ctx context.Context) (*dto.SelectOptionsResponse, error) {
	categorias, err := s.ListarCategorias(ctx)
	if err != nil {
		return nil, err
	}
	subcategorias, err := s.ListarSubcategorias(ctx, nil)
	if err != nil {
		return nil, err
	}
	presentaciones, err := s.ListarPresentaciones(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SelectOptionsResponse{
		Categorias:     categorias,
		Subcategorias:  subcategorias,
		Presentaciones: presentaciones,
	}, nil
}

func toOpciones[T any](items []T, fields func(T) (uint, string)) []dto.OpcionResponse {
	resp := make([]dto.OpcionResponse, len(items))
	for i, item := range items {
		id, nombre := fields(item)
		resp[i] = dto.OpcionResponse{ID: id, Nombre: nombre}
	}
	return resp
}
