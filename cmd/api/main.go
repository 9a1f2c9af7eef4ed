package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/speechcoach/intro-scorer/pkg/validator"

	"github.com/speechcoach/intro-scorer/internal/adapter/handler"
	"github.com/speechcoach/intro-scorer/internal/infrastructure/cache"
	"github.com/speechcoach/intro-scorer/internal/infrastructure/nlp"
	"github.com/speechcoach/intro-scorer/internal/usecase/scoring"
	pkgai "github.com/speechcoach/intro-scorer/pkg/ai"
	"github.com/speechcoach/intro-scorer/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Origins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize NLP pipeline
	log.Println("🔤 Initializing sentence pipeline...")
	pipeline := nlp.NewPipeline()

	// Initialize embedding encoder, cached behind Redis when available
	log.Println("🧠 Initializing embedding encoder...")
	embedder := pkgai.NewEmbeddingClient(&cfg.Embedding)

	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient)
	} else {
		log.Println("📦 Using in-memory embedding cache")
		store = cache.NewMemoryStore()
	}
	encoder := cache.NewCachedEncoder(embedder, store, cfg.Cache.TTL)

	// Initialize grammar checker and sentiment analyzer
	log.Println("📝 Initializing grammar checker...")
	grammar := pkgai.NewLanguageToolClient(&cfg.Grammar)
	sentiment := pkgai.NewSentimentAnalyzer()

	// Initialize scoring service
	log.Println("🎯 Initializing scoring service...")
	scoringService := scoring.NewService(pipeline, encoder, grammar, sentiment, logger)
	scoreController := handler.NewScoreController(scoringService, logger)
	log.Println("✅ Score controller initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, scoreController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
