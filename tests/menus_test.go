package tests

// menus_test.go
// Menu template management: creation validation, transactional detail
// replacement, price enrichment on readback.

import (
	"context"
	"testing"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuHarness struct {
	menus     *stubMenuRepo
	productos *stubProductoRepo
	precios   *stubPrecioRepo
	svc       service.MenuService
}

func newMenuHarness(t *testing.T) *menuHarness {
	t.Helper()
	menus := newStubMenuRepo()
	productos := newStubProductoRepo()
	precios := newStubPrecioRepo()
	ctx := context.Background()

	require.NoError(t, productos.Crear(ctx, &model.Producto{Descripcion: "Guiso de lentejas"}))
	require.NoError(t, productos.Crear(ctx, &model.Producto{Descripcion: "Postre de vainilla"}))
	require.NoError(t, precios.Registrar(ctx, &model.Precio{
		ProductoID: 1, PrecioUnidad: decimal.NewFromFloat(10.00), FechaActualizacion: time.Now(),
	}))

	return &menuHarness{
		menus:     menus,
		productos: productos,
		precios:   precios,
		svc:       service.NewMenuService(menus, productos, precios),
	}
}

func TestCrearMenu_Valido(t *testing.T) {
	h := newMenuHarness(t)

	resp, err := h.svc.Crear(context.Background(), dto.CrearMenuRequest{
		Nombre: "Almuerzo Ejecutivo",
		Detalles: []dto.DetalleMenuRequest{
			{ProductoID: 1, Cantidad: 2},
			{ProductoID: 2, Cantidad: 1, EsExtra: true},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Almuerzo Ejecutivo", resp.Nombre)
	require.Len(t, resp.Detalles, 2)
	assert.True(t, decimal.NewFromFloat(10.00).Equal(resp.Detalles[0].PrecioUnidad), "readback carries current price")
	assert.True(t, resp.Detalles[1].PrecioUnidad.IsZero(), "product without history resolves to zero")
	assert.True(t, resp.Detalles[1].EsExtra)
}

func TestCrearMenu_SinDetalles(t *testing.T) {
	h := newMenuHarness(t)

	_, err := h.svc.Crear(context.Background(), dto.CrearMenuRequest{Nombre: "Menú vacío"})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
	assert.Empty(t, h.menus.menus)
}

func TestCrearMenu_ProductoInexistente(t *testing.T) {
	h := newMenuHarness(t)

	_, err := h.svc.Crear(context.Background(), dto.CrearMenuRequest{
		Nombre:   "Menú roto",
		Detalles: []dto.DetalleMenuRequest{{ProductoID: 404, Cantidad: 1}},
	})

	assert.ErrorIs(t, err, service.ErrDatosInvalidos)
}

func TestActualizarMenu_ReemplazaDetallesCompletos(t *testing.T) {
	h := newMenuHarness(t)
	ctx := context.Background()

	creado, err := h.svc.Crear(ctx, dto.CrearMenuRequest{
		Nombre: "Almuerzo Ejecutivo",
		Detalles: []dto.DetalleMenuRequest{
			{ProductoID: 1, Cantidad: 2},
			{ProductoID: 2, Cantidad: 1, EsExtra: true},
		},
	})
	require.NoError(t, err)

	actualizado, err := h.svc.Actualizar(ctx, creado.ID, dto.ActualizarMenuRequest{
		Nombre:   "Almuerzo Liviano",
		Detalles: []dto.DetalleMenuRequest{{ProductoID: 2, Cantidad: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Almuerzo Liviano", actualizado.Nombre)
	require.Len(t, actualizado.Detalles, 1, "old line set fully replaced")
	assert.Equal(t, uint(2), actualizado.Detalles[0].ProductoID)
	assert.Equal(t, 3, actualizado.Detalles[0].Cantidad)
}

func TestActualizarMenu_Inexistente(t *testing.T) {
	h := newMenuHarness(t)

	_, err := h.svc.Actualizar(context.Background(), 404, dto.ActualizarMenuRequest{
		Nombre:   "Fantasma",
		Detalles: []dto.DetalleMenuRequest{{ProductoID: 1, Cantidad: 1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "menú no encontrado")
}

func TestEliminarMenu(t *testing.T) {
	h := newMenuHarness(t)
	ctx := context.Background()

	creado, err := h.svc.Crear(ctx, dto.CrearMenuRequest{
		Nombre:   "Desayuno",
		Detalles: []dto.DetalleMenuRequest{{ProductoID: 1, Cantidad: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, h.svc.Eliminar(ctx, creado.ID))
	_, err = h.svc.ObtenerPorID(ctx, creado.ID)
	assert.Error(t, err)
}
