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
	"plan-visualizer/internal/visualizer/assets"
	"plan-visualizer/internal/visualizer/handlers"
	"plan-visualizer/internal/visualizer/repository"
	"plan-visualizer/internal/visualizer/scene"
	"plan-visualizer/internal/visualizer/session"
	"plan-visualizer/internal/visualizer/theme"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// ============================================================
// Visualizer Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "visualizer")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	palettes := theme.Builtin()
	if cfg.ThemesFile != "" {
		extra, err := theme.LoadPalettes(cfg.ThemesFile)
		if err != nil {
			log.Fatal("Failed to load palettes", zap.String("path", cfg.ThemesFile), zap.Error(err))
		}
		palettes = theme.Merge(palettes, extra)
	}

	var registry theme.Registry = theme.NewStaticRegistry(palettes)
	checks := map[string]health.Check{}
	if cfg.ThemesDBPath != "" {
		db, err := repository.OpenSQLite(cfg.ThemesDBPath)
		if err != nil {
			log.Fatal("Failed to open theme database", zap.Error(err))
		}
		defer db.Close()

		repo := repository.New(db, log)
		if err := repo.Init(ctx, cfg.MigrationsPath, palettes); err != nil {
			log.Fatal("Failed to init theme database", zap.Error(err))
		}
		registry = repo
		checks["themes_db"] = db.PingContext
	}

	resolver, err := theme.NewResolver(ctx, registry, cfg.DefaultTheme)
	if err != nil {
		log.Fatal("Failed to select default theme", zap.String("theme", cfg.DefaultTheme), zap.Error(err))
	}

	env := assets.NewLoader(cfg.EnvironmentURL, scene.EnvironmentPreset, time.Duration(cfg.UpstreamTimeout)*time.Second, log)
	env.Start(ctx)

	sessions := session.NewManager(resolver, env)
	renderHandler := handlers.NewRenderHandler(resolver, sessions, env, log)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Plan Visualizer",
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
	app.Get("/health/ready", health.ReadinessProbe(checks))

	// ============================================================
	// Visualizer Routes
	// ============================================================

	renderHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("Starting Plan Visualizer",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("theme", resolver.Current().Name),
		zap.String("environment_map", string(env.Snapshot().Status)),
	)

	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
