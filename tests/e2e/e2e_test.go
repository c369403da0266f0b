//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Full billing cycle: login → cliente → producto + precio → menú →
//     asignación semanal → generar factura → readback
//   - Frozen snapshots: a price change after generation never alters a
//     stored factura
//   - Weekly config full replace via POST /v1/asignaciones
//   - Role enforcement: operador cannot delete clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Joecr98/sistema-precios-menus/internal/config"
	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/infra"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
	"github.com/Joecr98/sistema-precios-menus/internal/router"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// assertMonto compares a decimal string from a response against an expected
// amount, ignoring scale ("25" vs "25.00").
func assertMonto(t *testing.T, expected, got string, msgAndArgs ...any) {
	t.Helper()
	want, err := decimal.NewFromString(expected)
	require.NoError(t, err)
	have, err := decimal.NewFromString(got)
	require.NoError(t, err)
	assert.True(t, want.Equal(have), msgAndArgs...)
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("menus_test"),
		tcPostgres.WithUsername("menus"),
		tcPostgres.WithPassword("menus"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL, cfg.WorkerPoolSize)
	require.NoError(t, err)

	// Seed admin through the service so the hash matches the login path.
	authSvc := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	_, err = authSvc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Correo:   "admin@e2e.test",
		Nombre:   "Admin E2E",
		Password: "clave-e2e-2026",
		Rol:      "administrador",
	})
	require.NoError(t, err)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"correo": "admin@e2e.test", "password": "clave-e2e-2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.Token)

	return &testEnv{server: srv, token: loginBody.Token}
}

// seedSemana creates cliente + productos (with prices) + menú + asignación
// for Lunes, all through the API, and returns the created IDs.
func seedSemana(t *testing.T, env *testEnv) (clienteID, menuID, guisoID uint) {
	t.Helper()

	clienteResp := do(t, env.server, "POST", "/v1/clientes",
		jsonBody(t, map[string]any{
			"nombre":    "Comedor Industrial Sur",
			"direccion": "Av. Siempreviva 742",
		}), env.token)
	require.Equal(t, http.StatusCreated, clienteResp.StatusCode)
	var cliente struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, clienteResp, &cliente)

	guisoResp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{
			"descripcion":   "Guiso de lentejas",
			"precio_unidad": "10.00",
			"precio_costo":  "6.00",
		}), env.token)
	require.Equal(t, http.StatusCreated, guisoResp.StatusCode)
	var guiso struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, guisoResp, &guiso)

	postreResp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{
			"descripcion":   "Postre de vainilla",
			"precio_unidad": "5.00",
		}), env.token)
	require.Equal(t, http.StatusCreated, postreResp.StatusCode)
	var postre struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, postreResp, &postre)

	menuResp := do(t, env.server, "POST", "/v1/menus",
		jsonBody(t, map[string]any{
			"nombre": "Almuerzo Ejecutivo",
			"detalles": []map[string]any{
				{"producto_id": guiso.ID, "cantidad": 2},
				{"producto_id": postre.ID, "cantidad": 1, "es_extra": true},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, menuResp.StatusCode)
	var menu struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, menuResp, &menu)

	asigResp := do(t, env.server, "POST", "/v1/asignaciones",
		jsonBody(t, map[string]any{
			"cliente_id": cliente.ID,
			"configuraciones": []map[string]any{
				{"menu_id": menu.ID, "dia_semana": "Lunes"},
			},
		}), env.token)
	require.Equal(t, http.StatusOK, asigResp.StatusCode)

	return cliente.ID, menu.ID, guiso.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullBillingCycle(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, _, _ := seedSemana(t, env)

	genResp := do(t, env.server, "POST", "/v1/facturas",
		jsonBody(t, map[string]any{
			"clientId": clienteID,
			"dias":     []string{"Lunes"},
		}), env.token)
	require.Equal(t, http.StatusCreated, genResp.StatusCode)

	var factura struct {
		FacturaID uint   `json:"facturaId"`
		Total     string `json:"total"`
		Details   []struct {
			Day            string `json:"day"`
			MenuName       string `json:"menuName"`
			Subtotal       string `json:"subtotal"`
			SubtotalExtras string `json:"subtotalExtras"`
			Total          string `json:"total"`
		} `json:"details"`
	}
	decodeJSON(t, genResp, &factura)
	require.NotZero(t, factura.FacturaID)
	require.Len(t, factura.Details, 1)
	assert.Equal(t, "Lunes", factura.Details[0].Day)
	assert.Equal(t, "Almuerzo Ejecutivo", factura.Details[0].MenuName)
	assertMonto(t, "20.00", factura.Details[0].Subtotal)
	assertMonto(t, "5.00", factura.Details[0].SubtotalExtras)
	assertMonto(t, "25.00", factura.Total)

	// Readback by id and by client.
	getResp := do(t, env.server, "GET", fmt.Sprintf("/v1/facturas/%d", factura.FacturaID), nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var leida struct {
		ID       uint   `json:"id"`
		Total    string `json:"total"`
		Detalles []struct {
			Producto       string `json:"producto"`
			Cantidad       int    `json:"cantidad"`
			PrecioUnitario string `json:"precio_unitario"`
		} `json:"detalles"`
	}
	decodeJSON(t, getResp, &leida)
	assert.Equal(t, factura.FacturaID, leida.ID)
	require.Len(t, leida.Detalles, 2)

	listResp := do(t, env.server, "GET", fmt.Sprintf("/v1/facturas?cliente_id=%d", clienteID), nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
}

func TestE2E_SnapshotInmutableTrasCambioDePrecio(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, _, guisoID := seedSemana(t, env)

	genResp := do(t, env.server, "POST", "/v1/facturas",
		jsonBody(t, map[string]any{"clientId": clienteID, "dias": []string{"Lunes"}}), env.token)
	require.Equal(t, http.StatusCreated, genResp.StatusCode)
	var primera struct {
		FacturaID uint   `json:"facturaId"`
		Total     string `json:"total"`
	}
	decodeJSON(t, genResp, &primera)

	// New price row for the main dish. Stored factura keeps its snapshot.
	precioResp := do(t, env.server, "POST", fmt.Sprintf("/v1/productos/%d/precios", guisoID),
		jsonBody(t, map[string]any{"precio_unidad": "99.00"}), env.token)
	require.Equal(t, http.StatusCreated, precioResp.StatusCode)

	getResp := do(t, env.server, "GET", fmt.Sprintf("/v1/facturas/%d", primera.FacturaID), nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var relectura struct {
		Total    string `json:"total"`
		Detalles []struct {
			PrecioUnitario string `json:"precio_unitario"`
		} `json:"detalles"`
	}
	decodeJSON(t, getResp, &relectura)
	assertMonto(t, "25.00", relectura.Total)
	assertMonto(t, "10.00", relectura.Detalles[0].PrecioUnitario)

	// A fresh generation picks up the new price.
	genResp2 := do(t, env.server, "POST", "/v1/facturas",
		jsonBody(t, map[string]any{"clientId": clienteID, "dias": []string{"Lunes"}}), env.token)
	require.Equal(t, http.StatusCreated, genResp2.StatusCode)
	var segunda struct {
		FacturaID uint   `json:"facturaId"`
		Total     string `json:"total"`
	}
	decodeJSON(t, genResp2, &segunda)
	assert.NotEqual(t, primera.FacturaID, segunda.FacturaID)
	assertMonto(t, "203.00", segunda.Total, "2 x 99.00 + 1 x 5.00")
}

func TestE2E_GenerarSinAsignaciones(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, _, _ := seedSemana(t, env)

	// Martes has no menu configured.
	genResp := do(t, env.server, "POST", "/v1/facturas",
		jsonBody(t, map[string]any{"clientId": clienteID, "dias": []string{"Martes"}}), env.token)
	defer genResp.Body.Close()

	assert.Equal(t, http.StatusNotFound, genResp.StatusCode)
}

func TestE2E_AsignacionesReemplazoCompleto(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, menuID, _ := seedSemana(t, env)

	// Replace the week: Lunes is gone, Miércoles appears.
	asigResp := do(t, env.server, "POST", "/v1/asignaciones",
		jsonBody(t, map[string]any{
			"cliente_id": clienteID,
			"configuraciones": []map[string]any{
				{"menu_id": menuID, "dia_semana": "Miércoles"},
			},
		}), env.token)
	require.Equal(t, http.StatusOK, asigResp.StatusCode)
	var semana []struct {
		DiaSemana string `json:"dia_semana"`
	}
	decodeJSON(t, asigResp, &semana)
	require.Len(t, semana, 1)
	assert.Equal(t, "Miércoles", semana[0].DiaSemana)

	// Billing Lunes now 404s.
	genResp := do(t, env.server, "POST", "/v1/facturas",
		jsonBody(t, map[string]any{"clientId": clienteID, "dias": []string{"Lunes"}}), env.token)
	defer genResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, genResp.StatusCode)
}

func TestE2E_OperadorNoPuedeEliminarClientes(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, _, _ := seedSemana(t, env)

	// Create an operador and log in as them.
	crearResp := do(t, env.server, "POST", "/v1/usuarios",
		jsonBody(t, map[string]any{
			"correo":   "operador@e2e.test",
			"nombre":   "Operador E2E",
			"password": "clave-operador-1",
			"rol":      "operador",
		}), env.token)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)

	loginResp := do(t, env.server, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"correo": "operador@e2e.test", "password": "clave-operador-1"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &login)

	delResp := do(t, env.server, "DELETE", fmt.Sprintf("/v1/clientes/%d", clienteID), nil, login.Token)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusForbidden, delResp.StatusCode)

	// The operador can still read.
	listResp := do(t, env.server, "GET", "/v1/clientes", nil, login.Token)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}
