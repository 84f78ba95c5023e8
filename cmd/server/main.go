package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	advertapp "github.com/Daninc24/myshop/internal/application/advert"
	catalogapp "github.com/Daninc24/myshop/internal/application/catalog"
	identityapp "github.com/Daninc24/myshop/internal/application/identity"
	inventoryapp "github.com/Daninc24/myshop/internal/application/inventory"
	messagingapp "github.com/Daninc24/myshop/internal/application/messaging"
	orderingapp "github.com/Daninc24/myshop/internal/application/ordering"
	posapp "github.com/Daninc24/myshop/internal/application/pos"
	"github.com/Daninc24/myshop/internal/infrastructure/auth"
	"github.com/Daninc24/myshop/internal/infrastructure/config"
	"github.com/Daninc24/myshop/internal/infrastructure/eventbus"
	"github.com/Daninc24/myshop/internal/infrastructure/logger"
	"github.com/Daninc24/myshop/internal/infrastructure/persistence"
	"github.com/Daninc24/myshop/internal/interfaces/http/handler"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
	"github.com/Daninc24/myshop/internal/interfaces/http/router"
)

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

	log.Info("Starting MyShop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Token blacklist: Redis when available, in-memory otherwise
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected", zap.String("host", cfg.Redis.Host))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	logRepo := persistence.NewGormInventoryLogRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	advertRepo := persistence.NewGormAdvertRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)

	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus and cross-context handlers
	bus := eventbus.NewInMemoryEventBus(log)

	lowStockHandler := inventoryapp.NewLowStockHandler(inventoryapp.NewLoggingStockAlertNotifier(log), log)
	bus.Subscribe(lowStockHandler)
	log.Info("Event handlers registered",
		zap.Strings("low_stock_events", lowStockHandler.EventTypes()),
	)

	if err := bus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := bus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, bus, log)
	userService := identityapp.NewUserService(userRepo, bus, log)
	productService := catalogapp.NewProductService(productRepo, salesReportRepo, txScope, bus, log)
	logService := inventoryapp.NewLogService(logRepo, productRepo, log)
	orderService := orderingapp.NewOrderService(orderRepo, txScope, bus, log)
	saleService := posapp.NewSaleService(saleRepo, txScope, bus, log)
	reportService := posapp.NewReportService(salesReportRepo, log)
	advertService := advertapp.NewAdvertService(advertRepo, productRepo, log)
	messageService := messagingapp.NewMessageService(messageRepo, userRepo, log)

	// Gin mode
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body limit, rate limit
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

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint outside API versioning
	engine.GET("/health", healthHandler(db, log))

	// JWT authentication, applied per route group by the handlers
	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Stricter rate limit on the credential endpoints
	var authPublicMW []gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authPublicMW = append(authPublicMW, middleware.RateLimit(authLimiter))
	}

	// HTTP handlers and routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewAuthHandler(authService, authMW, authPublicMW...)).
		Register(handler.NewUserHandler(userService, authMW)).
		Register(handler.NewProductHandler(productService, logService, authMW)).
		Register(handler.NewOrderHandler(orderService, authMW)).
		Register(handler.NewPOSHandler(saleService, reportService, authMW)).
		Register(handler.NewAdvertHandler(advertService, authMW)).
		Register(handler.NewMessageHandler(messageService, authMW))
	r.Setup()

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

// healthHandler reports liveness and database reachability
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
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
