package tests

// auth_test.go
// Login, password hashing and the JWT claims the middleware reads back.

import (
	"context"
	"testing"

	"github.com/Joecr98/sistema-precios-menus/internal/config"
	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/middleware"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Correo == correo && u.Activo {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Actualizar(_ context.Context, u *model.Usuario) error {
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uint) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func newAuthService() (service.AuthService, *stubUsuarioRepo, *config.Config) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return service.NewAuthService(repo, cfg), repo, cfg
}

func seedUsuario(t *testing.T, svc service.AuthService) dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Correo:   "ana@precios-menus.local",
		Nombre:   "Ana Pérez",
		Password: "super-secreta",
		Rol:      "operador",
	})
	require.NoError(t, err)
	return *resp
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearUsuario_GuardaHashNoElPassword(t *testing.T) {
	svc, repo, _ := newAuthService()

	resp := seedUsuario(t, svc)

	guardado := repo.usuarios[resp.ID]
	assert.NotEqual(t, "super-secreta", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("super-secreta")))
	assert.True(t, guardado.Activo)
}

func TestLogin_Exitoso(t *testing.T) {
	svc, _, cfg := newAuthService()
	seedUsuario(t, svc)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "ana@precios-menus.local",
		Password: "super-secreta",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, cfg.JWTExpirationHours*3600, resp.ExpiresIn)
	assert.Equal(t, "operador", resp.User.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	svc, _, _ := newAuthService()
	seedUsuario(t, svc)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "ana@precios-menus.local",
		Password: "otra-cosa",
	})

	require.Error(t, err)
	assert.Equal(t, "credenciales inválidas", err.Error())
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "nadie@precios-menus.local",
		Password: "lo-que-sea",
	})

	require.Error(t, err)
	assert.Equal(t, "credenciales inválidas", err.Error(), "same message for unknown user and bad password")
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	svc, _, _ := newAuthService()
	creado := seedUsuario(t, svc)
	require.NoError(t, svc.DesactivarUsuario(context.Background(), creado.ID))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "ana@precios-menus.local",
		Password: "super-secreta",
	})

	assert.Error(t, err)
}

func TestLogin_TokenLlevaLosClaimsDelMiddleware(t *testing.T) {
	svc, _, cfg := newAuthService()
	creado := seedUsuario(t, svc)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "ana@precios-menus.local",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, creado.ID, claims.UserID)
	assert.Equal(t, "ana@precios-menus.local", claims.Correo)
	assert.Equal(t, "operador", claims.Rol)
}

func TestActualizarUsuario_Parcial(t *testing.T) {
	svc, repo, _ := newAuthService()
	creado := seedUsuario(t, svc)

	actualizado, err := svc.ActualizarUsuario(context.Background(), creado.ID, dto.ActualizarUsuarioRequest{
		Rol: "administrador",
	})
	require.NoError(t, err)

	assert.Equal(t, "administrador", actualizado.Rol)
	assert.Equal(t, "Ana Pérez", actualizado.Nombre, "unset fields keep their value")

	guardado := repo.usuarios[creado.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("super-secreta")),
		"password untouched when not sent")
}

func TestActualizarUsuario_CambioDePassword(t *testing.T) {
	svc, repo, _ := newAuthService()
	creado := seedUsuario(t, svc)

	_, err := svc.ActualizarUsuario(context.Background(), creado.ID, dto.ActualizarUsuarioRequest{
		Password: "nueva-clave-123",
	})
	require.NoError(t, err)

	guardado := repo.usuarios[creado.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("nueva-clave-123")))
}
