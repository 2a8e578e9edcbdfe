package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"pusaka-newsletter/internal/catalog"
	"pusaka-newsletter/internal/config"
	"pusaka-newsletter/internal/handler"
	"pusaka-newsletter/internal/infrastructure/database"
	"pusaka-newsletter/internal/infrastructure/payment"
	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/metrics"
	"pusaka-newsletter/internal/middleware"
	"pusaka-newsletter/internal/repository"
	"pusaka-newsletter/internal/service"
	"pusaka-newsletter/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel)

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsPath, database.Up); err != nil {
			return err
		}
		logger.Info("Migrations applied", slog.String("path", cfg.MigrationsPath))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		URL:               cfg.DatabaseURL(),
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	plans, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load plan catalog: %w", err)
	}

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	blogRepo := repository.NewPostgresBlogRepository(pool)
	editionRepo := repository.NewPostgresEditionRepository(pool)
	subscriptionRepo := repository.NewPostgresSubscriptionRepository(pool)

	// Initialize services
	gateway := payment.NewClient(cfg.PaymentBaseURL, cfg.PaymentAPIKey, cfg.PaymentTimeout)
	articleService := service.NewArticleService(articleRepo)
	blogService := service.NewBlogService(blogRepo)
	editionService := service.NewEditionService(editionRepo, articleRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, subscriptionRepo, gateway, plans, service.CheckoutURLs{
		Success: cfg.PaymentSuccessURL,
		Return:  cfg.PaymentReturnURL,
	})
	exportService := service.NewExportService(articleRepo)
	feedService := service.NewFeedService(articleRepo, service.FeedConfig{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
		Author:      cfg.FeedAuthor,
		Size:        cfg.FeedSize,
	})

	// Initialize handlers
	v := validator.NewValidator()
	handlers := handler.Handlers{
		Articles:      handler.NewArticleHandler(articleService, v),
		Editions:      handler.NewEditionHandler(editionService, v),
		Blogs:         handler.NewBlogHandler(blogService, v),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionService, v),
		Exports:       handler.NewExportHandler(exportService),
		Feed:          handler.NewFeedHandler(feedService),
		Health:        handler.NewHealthHandler(pool, version),
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	handler.RegisterRoutes(router, handlers, middleware.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer))

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
	}
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}
