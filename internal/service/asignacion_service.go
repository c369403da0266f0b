package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
)

// AsignacionService manages the per-client weekly configuration: at most
// one menu per weekday. Guardar is a transactional full replace of the
// client's whole week.
type AsignacionService interface {
	Guardar(ctx context.Context, req dto.GuardarAsignacionesRequest) ([]dto.AsignacionResponse, error)
	ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.AsignacionResponse, error)
	EliminarUna(ctx context.Context, clienteID, menuID uint, diaSemana string) error
}

type asignacionService struct {
	asignaciones repository.AsignacionRepository
	clientes     repository.ClienteRepository
	menus        repository.MenuRepository
}

func NewAsignacionService(
	asignaciones repository.AsignacionRepository,
	clientes repository.ClienteRepository,
	menus repository.MenuRepository,
) AsignacionService {
	return &asignacionService{asignaciones: asignaciones, clientes: clientes, menus: menus}
}

func (s *asignacionService) Guardar(ctx context.Context, req dto.GuardarAsignacionesRequest) ([]dto.AsignacionResponse, error) {
	if req.ClienteID == 0 || len(req.Configuraciones) == 0 {
		return nil, ErrDatosInvalidos
	}
	if _, err := s.clientes.ObtenerPorID(ctx, req.ClienteID); err != nil {
		return nil, fmt.Errorf("%w: cliente %d no existe", ErrDatosInvalidos, req.ClienteID)
	}

	porDia := make(map[string]bool, len(req.Configuraciones))
	asignaciones := make([]model.AsignacionMenu, 0, len(req.Configuraciones))
	for _, c := range req.Configuraciones {
		if !model.DiaSemanaValido(c.DiaSemana) {
			return nil, fmt.Errorf("%w: día desconocido %q", ErrDatosInvalidos, c.DiaSemana)
		}
		if porDia[c.DiaSemana] {
			return nil, fmt.Errorf("%w: día repetido %q", ErrDatosInvalidos, c.DiaSemana)
		}
		porDia[c.DiaSemana] = true
		if _, err := s.menus.ObtenerPorID(ctx, c.MenuID); err != nil {
			return nil, fmt.Errorf("%w: menú %d no existe", ErrDatosInvalidos, c.MenuID)
		}
		asignaciones = append(asignaciones, model.AsignacionMenu{
			ClienteID: req.ClienteID,
			MenuID:    c.MenuID,
			DiaSemana: c.DiaSemana,
		})
	}

	if err := s.asignaciones.ReemplazarTodo(ctx, req.ClienteID, asignaciones); err != nil {
		return nil, err
	}
	return s.ListarPorCliente(ctx, req.ClienteID)
}

func (s *asignacionService) ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.AsignacionResponse, error) {
	asignaciones, err := s.asignaciones.ListarPorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AsignacionResponse, 0, len(asignaciones))
	for _, a := range asignaciones {
		nombre := ""
		if a.Menu != nil {
			nombre = a.Menu.Nombre
		}
		resp = append(resp, dto.AsignacionResponse{
			ID:        a.ID,
			ClienteID: a.ClienteID,
			MenuID:    a.MenuID,
			MenuName:  nombre,
			DiaSemana: a.DiaSemana,
		})
	}
	return resp, nil
}

func (s *asignacionService) EliminarUna(ctx context.Context, clienteID, menuID uint, diaSemana string) error {
	if !model.DiaSemanaValido(diaSemana) {
		return fmt.Errorf("%w: día desconocido %q", ErrDatosInvalidos, diaSemana)
	}
	if clienteID == 0 || menuID == 0 {
		return errors.New("cliente y menú son obligatorios")
	}
	return s.asignaciones.EliminarUna(ctx, clienteID, menuID, diaSemana)
}
