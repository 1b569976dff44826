package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/floracart/floracart/internal/app"
	"github.com/floracart/floracart/internal/auth"
	"github.com/floracart/floracart/internal/catalog/categories"
	"github.com/floracart/floracart/internal/catalog/products"
	"github.com/floracart/floracart/internal/contact"
	"github.com/floracart/floracart/internal/favorites"
	"github.com/floracart/floracart/internal/media"
	"github.com/floracart/floracart/internal/observability"
	"github.com/floracart/floracart/internal/platform/cache"
	"github.com/floracart/floracart/internal/platform/db"
	"github.com/floracart/floracart/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	jobClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr}, logger)
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	sessions := auth.NewSessionManager(redisClient, cfg.SessionTTL)
	authService := auth.NewService(auth.NewRepository(pool))
	authHandler := auth.NewHandler(logger, authService, sessions, cfg.IsProduction())

	categoryService := categories.NewService(categories.NewRepository(pool))
	categoryHandler := categories.NewHandler(logger, categoryService)

	productService := products.NewService(products.NewRepository(pool), cfg.CatalogPageSize, jobClient)
	productHandler := products.NewHandler(logger, productService)

	favoritesHandler := favorites.NewHandler(logger, favorites.NewStore(redisClient), productService, cfg.IsProduction())

	contactHandler := contact.NewHandler(logger, productService, cfg.ShopWhatsApp, cfg.ShopName)

	var mediaHandler *media.Handler
	if cfg.CloudinaryURL != "" {
		mediaService, err := media.NewService(cfg.CloudinaryURL, cfg.CloudinaryPreset)
		if err != nil {
			logger.Error("init media service", slog.Any("error", err))
			os.Exit(1)
		}
		mediaHandler = media.NewHandler(logger, mediaService)
	} else {
		logger.Warn("cloudinary not configured, admin uploads disabled")
		mediaHandler = media.NewHandler(logger, nil)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Sessions:          sessions,
		AuthHandler:       authHandler,
		CategoriesHandler: categoryHandler,
		ProductsHandler:   productHandler,
		FavoritesHandler:  favoritesHandler,
		ContactHandler:    contactHandler,
		MediaHandler:      mediaHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
