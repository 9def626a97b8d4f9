package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"topgames-api/controllers"
	"topgames-api/database"
	"topgames-api/middleware"
	"topgames-api/repository"
	"topgames-api/routes"
	"topgames-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	// Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. Initialization ---

	// Connect to MongoDB. Failure is not fatal: the API stays up and read
	// endpoints serve empty results until the store comes back at restart.
	var db *mongo.Database
	if cfg.DatabaseURL == "" {
		zap.L().Warn("DATABASE_URL not set, starting without a database")
	} else {
		db, err = database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			zap.L().Warn("Failed to connect to MongoDB, starting without a database", zap.Error(err))
			db = nil
		} else {
			zap.L().Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
		}
	}

	// Optional Redis for the product-list cache.
	var productRedis *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, cache disabled", zap.Error(err))
		} else {
			productRedis = redis.NewClient(redisOpts)
		}
	}

	// --- 2. Dependency Injection (Wiring the layers together) ---

	var store repository.ProductStore
	if db != nil {
		store = repository.NewProductRepository(db)
	}
	catalog := services.NewCatalogService(store)
	cache := controllers.NewCacheManager(productRedis)

	productController := controllers.NewProductController(catalog, cache)
	categoryController := controllers.NewCategoryController()
	healthController := controllers.NewHealthController(db)

	// --- 3. HTTP Server & Middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())

	// All origins, methods and headers allowed, credentials included. The
	// origin is echoed back so credentialed requests work from anywhere.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), controllers.DefaultContextTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route Registration ---

	routes.RegisterRoutes(r, productController, categoryController, healthController)

	// --- 5. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("TopGames API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down TopGames API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}
	if productRedis != nil {
		if err := productRedis.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	zap.L().Info("TopGames API stopped gracefully")
}
