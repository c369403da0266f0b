package tests

// asignaciones_test.go
// Weekly client configuration: full-replace save, one menu per day,
// validation against clients/menus/day names.

import (
	"context"
	"testing"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type asignacionHarness struct {
	clientes     *stubClienteRepo
	menus        *stubMenuRepo
	asignaciones *stubAsignacionRepo
	svc          service.AsignacionService
}

func newAsignacionHarness(t *testing.T) *asignacionHarness {
	t.Helper()
	clientes := newStubClienteRepo()
	menus := newStubMenuRepo()
	asignaciones := newStubAsignacionRepo(menus)
	ctx := context.Background()

	require.NoError(t, clientes.Crear(ctx, &model.Cliente{Nombre: "Comedor Industrial Sur"}))
	require.NoError(t, menus.Crear(ctx, &model.Menu{Nombre: "Almuerzo Ejecutivo", FechaCreacion: time.Now()}))
	require.NoError(t, menus.Crear(ctx, &model.Menu{Nombre: "Cena Liviana", FechaCreacion: time.Now()}))

	return &asignacionHarness{
		clientes:     clientes,
		menus:        menus,
		asignaciones: asignaciones,
		svc:          service.NewAsignacionService(asignaciones, clientes, menus),
	}
}

func TestGuardarAsignaciones_Valido(t *testing.T) {
	h := newAsignacionHarness(t)

	resp, err := h.svc.Guardar(context.Background(), dto.GuardarAsignacionesRequest{
		ClienteID: 1,
		Configuraciones: []dto.ConfiguracionDia{
			{MenuID: 1, DiaSemana: model.DiaLunes},
			{MenuID: 2, DiaSemana: model.DiaViernes},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Almuerzo Ejecutivo", resp[0].MenuName)
	assert.Equal(t, model.DiaLunes, resp[0].DiaSemana)
}

func TestGuardarAsignaciones_ReemplazaConfiguracionPrevia(t *testing.T) {
	h := newAsignacionHarness(t)
	ctx := context.Background()

	_, err := h.svc.Guardar(ctx, dto.GuardarAsignacionesRequest{
		ClienteID: 1,
		Configuraciones: []dto.ConfiguracionDia{
			{MenuID: 1, DiaSemana: model.DiaLunes},
			{MenuID: 1, DiaSemana: model.DiaMartes},
			{MenuID: 1, DiaSemana: model.DiaMiercoles},
		},
	})
	require.NoError(t, err)

	resp, err := h.svc.Guardar(ctx, dto.GuardarAsignacionesRequest{
		ClienteID:       1,
		Configuraciones: []dto.ConfiguracionDia{{MenuID: 2, DiaSemana: model.DiaJueves}},
	})
	require.NoError(t, err)

	require.Len(t, resp, 1, "save replaces the whole week, it does not merge")
	assert.Equal(t, model.DiaJueves, resp[0].DiaSemana)
	assert.Equal(t, uint(2), resp[0].MenuID)
}

func TestGuardarAsignaciones_DiaDesconocido(t *testing.T) {
	h := newAsignacionHarness(t)

	_, err := h.svc.Guardar(context.Background(), dto.GuardarAsignacionesRequest{
		ClienteID:       1,
		Configuraciones: []dto.ConfiguracionDia{{MenuID: 1, DiaSemana: "Funday"}},
	})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
	assert.Empty(t, h.asignaciones.asignaciones)
}

func TestGuardarAsignaciones_DiaRepetido(t *testing.T) {
	h := newAsignacionHarness(t)

	_, err := h.svc.Guardar(context.Background(), dto.GuardarAsignacionesRequest{
		ClienteID: 1,
		Configuraciones: []dto.ConfiguracionDia{
			{MenuID: 1, DiaSemana: model.DiaLunes},
			{MenuID: 2, DiaSemana: model.DiaLunes},
		},
	})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
	assert.Empty(t, h.asignaciones.asignaciones)
}

func TestGuardarAsignaciones_ClienteInexistente(t *testing.T) {
	h := newAsignacionHarness(t)

	_, err := h.svc.Guardar(context.Background(), dto.GuardarAsignacionesRequest{
		ClienteID:       404,
		Configuraciones: []dto.ConfiguracionDia{{MenuID: 1, DiaSemana: model.DiaLunes}},
	})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
}

func TestGuardarAsignaciones_MenuInexistente(t *testing.T) {
	h := newAsignacionHarness(t)

	_, err := h.svc.Guardar(context.Background(), dto.GuardarAsignacionesRequest{
		ClienteID:       1,
		Configuraciones: []dto.ConfiguracionDia{{MenuID: 404, DiaSemana: model.DiaLunes}},
	})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
}

func TestEliminarUnaAsignacion(t *testing.T) {
	h := newAsignacionHarness(t)
	ctx := context.Background()

	_, err := h.svc.Guardar(ctx, dto.GuardarAsignacionesRequest{
		ClienteID: 1,
		Configuraciones: []dto.ConfiguracionDia{
			{MenuID: 1, DiaSemana: model.DiaLunes},
			{MenuID: 2, DiaSemana: model.DiaViernes},
		},
	})
	require.NoError(t, err)

	require.NoError(t, h.svc.EliminarUna(ctx, 1, 1, model.DiaLunes))

	resto, err := h.svc.ListarPorCliente(ctx, 1)
	require.NoError(t, err)
	require.Len(t, resto, 1)
	assert.Equal(t, model.DiaViernes, resto[0].DiaSemana)
}

func TestEliminarUnaAsignacion_DiaInvalido(t *testing.T) {
	h := newAsignacionHarness(t)

	err := h.svc.EliminarUna(context.Background(), 1, 1, "Funday")

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
}
