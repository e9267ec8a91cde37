// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/domain/audit"
	"colibri/internal/domain/auth"
	"colibri/internal/domain/cart"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"
	"colibri/internal/domain/reports"
	"colibri/internal/domain/sales"
	"colibri/internal/infrastructure/http/v1/handlers"
	"colibri/internal/infrastructure/http/v1/middleware"
	"colibri/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	Logger       *logger.Logger
	JWTValidator middleware.JWTValidator

	AuthService    *auth.Service
	CatalogService *catalog.Service
	CartManager    *cart.Manager
	OrderService   *orders.Service
	SaleService    *sales.Service
	ReportService  *reports.Service

	// AuditReader serves the admin audit-trail endpoint. Optional; nil
	// reads an empty trail.
	AuditReader audit.Reader

	// ReadyCheck probes the storage backend for /health/ready. Optional.
	ReadyCheck handlers.ReadyChecker
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.ReadyCheck)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	productHandler := handlers.NewProductHandler(base, cfg.CatalogService)
	cartHandler := handlers.NewCartHandler(base, cfg.CartManager, cfg.CatalogService)
	saleHandler := handlers.NewSaleHandler(base, cfg.SaleService)
	orderHandler := handlers.NewOrderHandler(base, cfg.OrderService)
	reportHandler := handlers.NewReportHandler(base, cfg.ReportService)

	auditReader := cfg.AuditReader
	if auditReader == nil {
		auditReader = audit.Nop{}
	}
	auditHandler := handlers.NewAuditHandler(base, auditReader)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/productos", productHandler.List)
			protected.GET("/productos/:sku", productHandler.Get)

			protected.GET("/carrito", cartHandler.Get)
			protected.POST("/carrito/items", cartHandler.AddItem)
			protected.PUT("/carrito/items/:sku", cartHandler.SetQuantity)
			protected.DELETE("/carrito", cartHandler.Clear)

			protected.POST("/ventas", saleHandler.Close)
			protected.GET("/ventas", saleHandler.List)

			protected.GET("/pedidos", orderHandler.List)
			protected.POST("/pedidos", orderHandler.Create)
			protected.GET("/pedidos/:numero", orderHandler.Get)
			protected.PATCH("/pedidos/:numero/estado", orderHandler.UpdateStatus)

			reportes := protected.Group("/reportes")
			{
				reportes.GET("/resumen", reportHandler.Summary)
				reportes.GET("/ventas", reportHandler.Sales)
				reportes.GET("/top-productos", reportHandler.TopProducts)
				reportes.GET("/stock-bajo", reportHandler.LowStock)
				reportes.GET("/ventas.csv", reportHandler.ExportSalesCSV)
				reportes.GET("/pedidos.csv", reportHandler.ExportOrdersCSV)
			}

			// Price and catalog management stay behind the admin role.
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/productos", productHandler.Create)
				admin.PATCH("/productos/:sku/precio", productHandler.UpdatePrice)
				admin.GET("/auditoria/:tipo/:clave", auditHandler.List)
			}
		}
	}

	return router
}
