package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/muebleria/backend/internal/application/catalog"
	financeapp "github.com/muebleria/backend/internal/application/finance"
	inventoryapp "github.com/muebleria/backend/internal/application/inventory"
	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/infrastructure/auth"
	"github.com/muebleria/backend/internal/infrastructure/cache"
	"github.com/muebleria/backend/internal/infrastructure/config"
	"github.com/muebleria/backend/internal/infrastructure/event"
	"github.com/muebleria/backend/internal/infrastructure/logger"
	"github.com/muebleria/backend/internal/infrastructure/persistence"
	"github.com/muebleria/backend/internal/interfaces/http/handler"
	"github.com/muebleria/backend/internal/interfaces/http/router"
)

// version is overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting muebleria backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	// Redis backs the exchange rate cache. The service degrades to
	// repository-only reads when Redis is unavailable at startup.
	var rateCache financeapp.RateCache
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := cache.NewRedisClient(redisCtx, &cfg.Redis)
	redisCancel()
	if err != nil {
		log.Warn("Redis unavailable, exchange rates will not be cached", zap.Error(err))
	} else {
		rateCache = cache.NewRedisRateCache(redisClient, cfg.Exchange.CacheTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	materialRepo := persistence.NewGormMaterialRepository(db.DB)
	furnitureRepo := persistence.NewGormFurnitureRepository(db.DB)
	setRepo := persistence.NewGormSetRepository(db.DB)
	movementRepo := persistence.NewGormProductMovementRepository(db.DB)
	stockRepo := persistence.NewGormStockViewRepository(db.DB)
	rateRepo := persistence.NewGormExchangeRateRepository(db.DB)

	// Transaction scopes
	catalogScope := persistence.NewGormCatalogTransactionScope(db.DB)
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Application services
	productService := catalogapp.NewProductService(catalogScope)
	referenceService := catalogapp.NewReferenceService(catalogScope)
	pricingService := catalogapp.NewPricingService(productRepo, materialRepo, furnitureRepo, setRepo)
	availabilityService := catalogapp.NewAvailabilityService(productRepo, setRepo, stockRepo)
	movementService := inventoryapp.NewMovementService(movementRepo)
	stockService := inventoryapp.NewStockService(stockRepo, materialRepo)
	orderService := tradeapp.NewOrderService(tradeScope, productRepo, setRepo)
	paymentService := tradeapp.NewPaymentService(tradeScope)
	purchaseService := tradeapp.NewPurchaseService(tradeScope)
	exchangeService := financeapp.NewExchangeService(rateRepo, rateCache, log)
	invoiceService := financeapp.NewInvoiceService(tradeScope, decimal.NewFromFloat(cfg.Invoice.TaxRate))

	// Domain events feed the audit log after each commit
	eventBus := event.NewBus(log)
	eventBus.Subscribe(event.NewAuditHandler(log))
	orderService.SetEventPublisher(eventBus)
	paymentService.SetEventPublisher(eventBus)

	// Background invoice generation, triggered by verified payments
	invoiceWorker := financeapp.NewInvoiceWorker(invoiceService, log, cfg.Invoice.QueueSize)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	invoiceWorker.Start(workerCtx)
	paymentService.SetInvoiceGenerator(invoiceWorker)

	// Authentication
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP handlers
	handlers := router.Handlers{
		System:    handler.NewSystemHandler(cfg.App.Name, version),
		Auth:      handler.NewAuthHandler(jwtService, cfg.Auth),
		Catalog:   handler.NewCatalogHandler(productService),
		Pricing:   handler.NewPricingHandler(pricingService, availabilityService),
		Reference: handler.NewReferenceHandler(referenceService),
		Inventory: handler.NewInventoryHandler(stockService, movementService),
		Order:     handler.NewOrderHandler(orderService, paymentService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Finance:   handler.NewFinanceHandler(exchangeService, invoiceService),
	}

	mode := gin.DebugMode
	if cfg.App.Env == "production" {
		mode = gin.ReleaseMode
	}

	engine := router.New(router.Config{
		Mode:         mode,
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		JWTService:   jwtService,
		Logger:       log,
	}, handlers)

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Drain pending invoice generations before exiting
	invoiceWorker.Stop()

	log.Info("Server exited gracefully")
}
