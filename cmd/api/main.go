// @title Quiz Pages API
// @version 1.0
// @description Quiz authoring and taking on top of a versioned document store.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"quizpages/internal/adapter"
	"quizpages/internal/adapter/pagestore"
	"quizpages/internal/cache"
	"quizpages/internal/config"
	"quizpages/internal/domain"
	"quizpages/internal/handler"
	"quizpages/internal/logger"
	"quizpages/internal/middleware"
	"quizpages/internal/service"
	"quizpages/internal/validation"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to the document store
	store := pagestore.New(cfg.Store)
	appLogger.Info("Document store client initialized", zap.String("base_url", cfg.Store.BaseURL))

	// Redis is optional: without it, quiz loads always hit the store.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured; quiz document cache disabled")
	}

	// Initialize services
	quizService := service.NewQuizService(store, cacheAdapter, cfg)
	attemptService := service.NewAttemptService(quizService)

	// Initialize handlers
	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, validator)
	attemptHandler := handler.NewAttemptHandler(attemptService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	validationMiddleware := middleware.NewValidationMiddleware()

	// Quiz authoring and catalog routes
	apiGroup.Post("/quizzes", quizHandler.SaveQuiz)
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Post("/quizzes/:id/results", validationMiddleware.ValidateDocumentIDParam(), quizHandler.RecordResult)

	// Attempt routes
	apiGroup.Post("/attempts", attemptHandler.StartAttempt)
	apiGroup.Post("/attempts/:id/answers", validationMiddleware.ValidateAttemptIDParam(), attemptHandler.SubmitAnswer)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
