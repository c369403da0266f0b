package router

import (
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/config"
	"github.com/Joecr98/sistema-precios-menus/internal/handler"
	"github.com/Joecr98/sistema-precios-menus/internal/middleware"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
	"github.com/Joecr98/sistema-precios-menus/internal/service"
	"github.com/Joecr98/sistema-precios-menus/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Domain))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	precioRepo := repository.NewPrecioRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	asignacionRepo := repository.NewAsignacionRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, asignacionRepo, facturaRepo)
	productoSvc := service.NewProductoService(productoRepo, precioRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo)
	menuSvc := service.NewMenuService(menuRepo, productoRepo, precioRepo)
	asignacionSvc := service.NewAsignacionService(asignacionRepo, clienteRepo, menuRepo)
	facturacionSvc := service.NewFacturacionService(asignacionRepo, menuRepo, precioRepo, facturaRepo, clienteRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	menusH := handler.NewMenusHandler(menuSvc)
	asignacionesH := handler.NewAsignacionesHandler(asignacionSvc)
	facturasH := handler.NewFacturasHandler(facturacionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: operador, administrador — declared per group
		lectura := middleware.RequireRole("operador", "administrador")
		admin := middleware.RequireRole("administrador")

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", lectura, clientesH.Listar)
			clientes.GET("/:id", lectura, clientesH.ObtenerPorID)
			clientes.POST("", lectura, clientesH.Crear)
			clientes.PUT("/:id", lectura, clientesH.Actualizar)
			clientes.DELETE("/:id", admin, clientesH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.GET("", lectura, productosH.Listar)
			productos.GET("/:id", lectura, productosH.ObtenerPorID)
			productos.GET("/:id/precios", lectura, productosH.HistorialPrecios)
			productos.POST("", lectura, productosH.Crear)
			productos.POST("/:id/precios", lectura, productosH.RegistrarPrecio)
			productos.PUT("/:id", lectura, productosH.Actualizar)
			productos.DELETE("/:id", admin, productosH.Eliminar)
		}

		v1.GET("/select-options", lectura, catalogoH.SelectOptions)
		v1.GET("/categorias", lectura, catalogoH.ListarCategorias)
		v1.POST("/categorias", lectura, catalogoH.CrearCategoria)
		v1.GET("/subcategorias", lectura, catalogoH.ListarSubcategorias)
		v1.POST("/subcategorias", lectura, catalogoH.CrearSubcategoria)
		v1.GET("/presentaciones", lectura, catalogoH.ListarPresentaciones)
		v1.POST("/presentaciones", lectura, catalogoH.CrearPresentacion)

		menus := v1.Group("/menus")
		{
			menus.GET("", lectura, menusH.Listar)
			menus.GET("/:id", lectura, menusH.ObtenerPorID)
			menus.POST("", lectura, menusH.Crear)
			menus.PUT("/:id", lectura, menusH.Actualizar)
			menus.DELETE("/:id", admin, menusH.Eliminar)
		}

		asignaciones := v1.Group("/asignaciones")
		{
			asignaciones.GET("", lectura, asignacionesH.ListarPorCliente)
			asignaciones.POST("", lectura, asignacionesH.Guardar)
			asignaciones.DELETE("", lectura, asignacionesH.EliminarUna)
		}

		facturas := v1.Group("/facturas")
		{
			facturas.POST("", lectura, facturasH.Generar)
			facturas.GET("", lectura, facturasH.ListarPorCliente)
			facturas.GET("/:id", lectura, facturasH.ObtenerPorID)
			facturas.GET("/:id/pdf", lectura, facturasH.DescargarPDF)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
