package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	clientes     repository.ClienteRepository
	asignaciones repository.AsignacionRepository
	facturas     repository.FacturaRepository
}

func NewClienteService(
	clientes repository.ClienteRepository,
	asignaciones repository.AsignacionRepository,
	facturas repository.FacturaRepository,
) ClienteService {
	return &clienteService{clientes: clientes, asignaciones: asignaciones, facturas: facturas}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Correo:    req.Correo,
	}
	if err := s.clientes.Crear(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.clientes.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	return toClienteResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.clientes.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *toClienteResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.clientes.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	c.Nombre = req.Nombre
	c.Direccion = req.Direccion
	c.Telefono = req.Telefono
	c.Correo = req.Correo
	if err := s.clientes.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Eliminar removes the client and its weekly configuration. Clients with
// generated facturas cannot be removed: invoices are the billing history
// and keep their cliente reference.
func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.clientes.ObtenerPorID(ctx, id); err != nil {
		return errors.New("cliente no encontrado")
	}
	facturas, err := s.facturas.ListarPorCliente(ctx, id)
	if err != nil {
		return err
	}
	if len(facturas) > 0 {
		return fmt.Errorf("%w: el cliente tiene %d facturas generadas", ErrDatosInvalidos, len(facturas))
	}
	if err := s.asignaciones.ReemplazarTodo(ctx, id, nil); err != nil {
		return err
	}
	return s.clientes.Eliminar(ctx, id)
}

func toClienteResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Correo:    c.Correo,
	}
}
