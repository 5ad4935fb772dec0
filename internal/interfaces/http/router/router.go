package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muebleria/backend/internal/infrastructure/auth"
	"github.com/muebleria/backend/internal/infrastructure/logger"
	"github.com/muebleria/backend/internal/interfaces/http/handler"
	"github.com/muebleria/backend/internal/interfaces/http/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Pricing   *handler.PricingHandler
	Reference *handler.ReferenceHandler
	Inventory *handler.InventoryHandler
	Order     *handler.OrderHandler
	Purchase  *handler.PurchaseHandler
	Finance   *handler.FinanceHandler
}

// Config holds router configuration
type Config struct {
	Mode         string
	AllowOrigins []string
	JWTService   *auth.JWTService
	Logger       *zap.Logger
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg Config, h Handlers) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	middleware.SetupValidator()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(logger.Recovery(cfg.Logger))
	r.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.AllowOrigins
	r.Use(middleware.CORSWithConfig(corsCfg))

	r.GET("/health", h.System.Health)

	v1 := r.Group("/api/v1")
	jwtCfg := middleware.DefaultJWTConfig(cfg.JWTService)
	jwtCfg.Logger = cfg.Logger
	v1.Use(middleware.JWTAuthWithConfig(jwtCfg))

	v1.GET("/health", h.System.Health)
	v1.POST("/auth/login", h.Auth.Login)

	catalog := v1.Group("/catalog")
	{
		catalog.POST("/materials", h.Catalog.CreateMaterial)
		catalog.POST("/furnitures", h.Catalog.CreateFurniture)
		catalog.PUT("/furnitures/:id/recipe", h.Catalog.UpdateFurnitureRecipe)
		catalog.GET("/furnitures/:id/price", h.Pricing.QuoteFurniture)
		catalog.POST("/sets", h.Catalog.CreateSet)
		catalog.PUT("/sets/:id/components", h.Catalog.UpdateSetComponents)
		catalog.GET("/sets/:id/price", h.Pricing.QuoteSet)
		catalog.GET("/sets/:id/availability", h.Pricing.SetAvailability)

		catalog.GET("/products", h.Catalog.ListProducts)
		catalog.GET("/products/sellable", h.Catalog.ListSellable)
		catalog.GET("/products/:id", h.Catalog.GetProduct)
		catalog.PUT("/products/:id", h.Catalog.UpdateProduct)
		catalog.DELETE("/products/:id", h.Catalog.DeleteProduct)
		catalog.PUT("/products/:id/colors", h.Catalog.ReplaceColors)
		catalog.GET("/products/:id/price", h.Pricing.QuoteProduct)
		catalog.GET("/products/:id/availability", h.Pricing.ProductAvailability)

		catalog.GET("/colors", h.Reference.ListColors)
		catalog.POST("/colors", h.Reference.CreateColor)
		catalog.PUT("/colors/:id", h.Reference.UpdateColor)
		catalog.DELETE("/colors/:id", h.Reference.DeleteColor)

		catalog.GET("/labors", h.Reference.ListLabors)
		catalog.POST("/labors", h.Reference.CreateLabor)
		catalog.PUT("/labors/:id", h.Reference.UpdateLabor)
		catalog.DELETE("/labors/:id", h.Reference.DeleteLabor)

		catalog.GET("/material-types", h.Reference.ListMaterialTypes)
		catalog.POST("/material-types", h.Reference.CreateMaterialType)
		catalog.DELETE("/material-types/:id", h.Reference.DeleteMaterialType)
	}

	inventory := v1.Group("/inventory")
	{
		inventory.GET("/stock", h.Inventory.StockOverview)
		inventory.GET("/stock/alerts", h.Inventory.LowStockAlerts)
		inventory.GET("/stock/:id", h.Inventory.ProductStock)
		inventory.GET("/movements", h.Inventory.ListMovements)
		inventory.GET("/movements/:id", h.Inventory.GetMovement)
		inventory.GET("/movements/source/:type/:source_id", h.Inventory.MovementsBySource)
		inventory.POST("/adjustments", h.Inventory.CreateAdjustment)
		inventory.POST("/adjustments/:id/reverse", h.Inventory.ReverseAdjustment)
	}

	trade := v1.Group("/trade")
	{
		trade.POST("/orders", h.Order.Create)
		trade.GET("/orders", h.Order.List)
		trade.GET("/orders/:id", h.Order.Get)
		trade.POST("/orders/:id/cancel", h.Order.Cancel)
		trade.DELETE("/orders/:id", h.Order.Delete)
		trade.POST("/orders/:id/payments", h.Order.SubmitPayment)
		trade.GET("/orders/:id/payments", h.Order.ListPayments)
		trade.GET("/orders/:id/invoice", h.Finance.GetInvoiceByOrder)
		trade.POST("/payments/:id/verify", h.Order.VerifyPayment)

		trade.POST("/purchases", h.Purchase.Create)
		trade.GET("/purchases", h.Purchase.List)
		trade.GET("/purchases/:id", h.Purchase.Get)
		trade.PUT("/purchases/:id", h.Purchase.Update)
		trade.DELETE("/purchases/:id", h.Purchase.Delete)
	}

	finance := v1.Group("/finance")
	{
		finance.GET("/rates", h.Finance.ListRates)
		finance.POST("/rates", h.Finance.CreateRate)
		finance.GET("/rates/:currency", h.Finance.GetRate)
		finance.PUT("/rates/:currency", h.Finance.UpdateRate)
		finance.GET("/invoices/:id", h.Finance.GetInvoice)
	}

	return r
}
