package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"plan-visualizer/internal/common/config"
	"plan-visualizer/internal/common/health"
	"plan-visualizer/internal/common/logger"
	"plan-visualizer/internal/common/middleware"
	"plan-visualizer/internal/gateway/generation"
	"plan-visualizer/internal/gateway/handlers"
	"plan-visualizer/internal/gateway/proxy"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "gateway")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	timeout := time.Duration(cfg.UpstreamTimeout) * time.Second
	generator := generation.NewClient(cfg.GenerationURL, timeout, log)
	generationHandler := generation.NewHandler(generator, log)
	upstream := proxy.New(timeout, log)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
		ErrorHandler: middleware.ErrorHandler(log),
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.IsProduction()))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe(map[string]health.Check{
		"visualizer": ping(cfg.VisualizerURL+"/health/live", timeout),
	}))
	app.Get("/health/startup", health.StartupProbe)

	if docs, err := handlers.LoadDocs("docs/openapi.yaml"); err != nil {
		log.Warn("API docs disabled", zap.Error(err))
	} else {
		app.Get("/docs", docs.UI)
		app.Get("/docs/openapi.yaml", docs.Spec)
	}

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Gateway v1",
			"status":  "ok",
		})
	})

	// Layout generator
	api.Post("/generate-layout", generationHandler.GenerateLayout)

	// Visualizer service
	api.All("/*", upstream.Under(cfg.VisualizerURL))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("Starting API Gateway",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("generation_url", cfg.GenerationURL),
		zap.String("visualizer_url", cfg.VisualizerURL),
	)

	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

func ping(url string, timeout time.Duration) health.Check {
	client := resty.New().SetTimeout(timeout)
	return func(ctx context.Context) error {
		resp, err := client.R().SetContext(ctx).Get(url)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("status %d", resp.StatusCode())
		}
		return nil
	}
}
