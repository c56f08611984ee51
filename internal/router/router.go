package router

import (
	"time"

	"mykonos/internal/config"
	"mykonos/internal/handler"
	"mykonos/internal/middleware"
	"mykonos/internal/repository"
	"mykonos/internal/service"
	"mykonos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns the configured Gin engine plus the
// stock service, which main also hands to the reconciliation worker pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, service.StockService) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	stockRepo := repository.NewStockRepository(db)
	descuentoRepo := repository.NewDescuentoRepository(db)
	grupoRepo := repository.NewGrupoRepository(db)
	sucursalRepo := repository.NewSucursalRepository(db)
	imagenRepo := repository.NewImagenRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	webUserRepo := repository.NewWebUserRepository(db)
	carritoRepo := repository.NewCarritoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	stockSvc := service.NewStockService(stockRepo, sucursalRepo, productoRepo, descuentoRepo, catalogoRepo)
	grupoSvc := service.NewGrupoService(grupoRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, stockSvc, grupoSvc, rdb,
		time.Duration(cfg.CacheTTLSeconds)*time.Second)
	productoSvc := service.NewProductoService(productoRepo, imagenRepo, descuentoRepo, stockSvc, dispatcher)
	sucursalSvc := service.NewSucursalService(sucursalRepo)
	usuarioSvc := service.NewUsuarioService(webUserRepo)
	compraSvc := service.NewCompraService(ventaRepo, imagenRepo)
	carritoSvc := service.NewCarritoService(carritoRepo, stockRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tiendaH := handler.NewTiendaHandler(catalogoSvc)
	productosH := handler.NewProductosHandler(productoSvc, stockSvc)
	gruposH := handler.NewGruposHandler(grupoSvc)
	sucursalesH := handler.NewSucursalesHandler(sucursalSvc, stockSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)

	sessionMW := middleware.SessionAuth(webUserRepo)
	adminMW := middleware.RequireAdmin()

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Public storefront
	products := api.Group("/products")
	{
		products.GET("/productos", tiendaH.Listar)
		products.GET("/online-store", tiendaH.Listar)
		products.GET("/online-store/:slug", tiendaH.PorSlug)
		products.GET("/productsByGroup/:groupName", tiendaH.ListarPorGrupo)
		products.GET("/codigo/:code", tiendaH.BuscarPorCodigo)
		products.GET("/:id", tiendaH.Detalle)
	}

	groups := api.Group("/groups")
	{
		groups.GET("", gruposH.Listar)
		groups.GET("/root", gruposH.Raices)
		groups.GET("/hierarchy", gruposH.Jerarquia)
		groups.GET("/:id", gruposH.ObtenerPorID)
	}

	api.GET("/branches/webProductsVariantsByBranch/:pid/:bid", sucursalesH.StockWebPorSucursal)

	// Auth (public endpoints)
	users := api.Group("/users")
	{
		users.POST("/register", usuariosH.Registrar)
		users.POST("/login", middleware.LoginRateLimiter(), usuariosH.Login)
		users.POST("/logout", usuariosH.Logout)
		users.POST("/verify-email", usuariosH.VerificarEmail)
		users.POST("/resend-verification", usuariosH.ReenviarVerificacion)

		me := users.Group("", sessionMW)
		{
			me.GET("/me", usuariosH.Perfil)
			me.PUT("/me", usuariosH.Actualizar)
			me.POST("/change-password", usuariosH.CambiarPassword)
		}
	}

	// Authenticated storefront
	purchases := api.Group("/purchases", sessionMW)
	{
		purchases.GET("/my-purchases", comprasH.MisCompras)
		purchases.GET("/my-purchases/:id", comprasH.DetalleCompra)
	}

	cart := api.Group("/cart", sessionMW)
	{
		cart.GET("", carritoH.Obtener)
		cart.POST("/items", carritoH.AgregarItem)
		cart.PUT("/items/:itemId", carritoH.ActualizarItem)
		cart.DELETE("/items/:itemId", carritoH.EliminarItem)
		cart.DELETE("", carritoH.Vaciar)
	}

	// Admin back-office
	admin := api.Group("", sessionMW, adminMW)
	{
		admin.POST("/products", productosH.Crear)
		admin.GET("/products/admin/list", productosH.Listar)
		admin.GET("/products/admin/:id", productosH.ObtenerPorID)
		admin.PUT("/products/:id", productosH.Actualizar)
		admin.DELETE("/products/:id", productosH.Eliminar)
		admin.POST("/products/:id/images", productosH.AgregarImagen)
		admin.DELETE("/products/:id/images/:imageId", productosH.EliminarImagen)

		admin.GET("/branches/all", sucursalesH.Listar)
		admin.GET("/branches/productsVariantsByBranch/:pid", sucursalesH.StockPorSucursal)

		admin.GET("/admin/schema", handler.Schema())
	}

	return r, stockSvc
}
