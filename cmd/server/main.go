package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	bomapp "github.com/purchase-system/backend/internal/application/bom"
	catalogapp "github.com/purchase-system/backend/internal/application/catalog"
	importapp "github.com/purchase-system/backend/internal/application/import"
	inventoryapp "github.com/purchase-system/backend/internal/application/inventory"
	projectapp "github.com/purchase-system/backend/internal/application/project"
	purchasingapp "github.com/purchase-system/backend/internal/application/purchasing"
	"github.com/purchase-system/backend/internal/infrastructure/config"
	"github.com/purchase-system/backend/internal/infrastructure/lock"
	"github.com/purchase-system/backend/internal/infrastructure/logger"
	"github.com/purchase-system/backend/internal/infrastructure/persistence"
	"github.com/purchase-system/backend/internal/interfaces/http/handler"
	"github.com/purchase-system/backend/internal/interfaces/http/middleware"
	"github.com/purchase-system/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Purchase System Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with zap-backed GORM logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, &cfg.Log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Per-project import lock: in-memory for a single node, redis when
	// several instances share the database.
	var projectLocker lock.ProjectLocker
	if cfg.Import.LockBackend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		cancel()
		log.Info("Redis connected, using distributed import lock")

		projectLocker = lock.NewRedisLocker(redisClient, cfg.Import.LockTTL)
	} else {
		projectLocker = lock.NewMemoryLocker()
	}

	// Initialize repositories
	partRepo := persistence.NewGormPartRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	lineRepo := persistence.NewGormLineRepository(db.DB)
	importStore := persistence.NewGormImportStore(db.DB)
	importHistoryRepo := persistence.NewGormImportHistoryRepository(db.DB)
	purchaseStore := persistence.NewGormPurchaseStore(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	networkRepo := persistence.NewGormNetworkRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)

	// Initialize application services
	partService := catalogapp.NewPartService(partRepo)
	projectService := projectapp.NewProjectService(projectRepo)
	bomService := bomapp.NewBOMService(lineRepo, projectRepo)
	importService := importapp.NewBOMImportService(importStore, projectLocker, importHistoryRepo, log)
	importHistoryService := importapp.NewImportHistoryService(importHistoryRepo)
	purchaseService := purchasingapp.NewPurchaseService(purchaseStore, purchaseRepo, lineRepo, log)
	vendorService := purchasingapp.NewVendorService(vendorRepo)
	networkService := purchasingapp.NewNetworkService(networkRepo)
	stockService := inventoryapp.NewStockService(stockRepo, partRepo)

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and request logs
	// carry it, then security headers, CORS and the body cap.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check outside the versioned API
	engine.GET("/health", healthHandler(db))

	// Register routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(
		handler.NewProjectHandler(projectService, log),
		handler.NewPartHandler(partService, log),
		handler.NewBOMHandler(bomService, importService, cfg.Import.MaxUploadSize, log),
		handler.NewImportHistoryHandler(importHistoryService, log),
		handler.NewPurchaseHandler(purchaseService, log),
		handler.NewVendorHandler(vendorService, log),
		handler.NewNetworkHandler(networkService, log),
		handler.NewStockHandler(stockService, log),
		handler.NewSystemHandler(cfg.App.Name, version, log),
	)
	r.Setup()

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness plus database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
