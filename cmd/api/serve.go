package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/muhammadgalhoum/DPS/internal/config"
	"github.com/muhammadgalhoum/DPS/internal/database"
	"github.com/muhammadgalhoum/DPS/internal/database/migration"
	handlers "github.com/muhammadgalhoum/DPS/internal/http/handler"
	"github.com/muhammadgalhoum/DPS/internal/http/middleware"
	"github.com/muhammadgalhoum/DPS/internal/logger"
	"github.com/muhammadgalhoum/DPS/internal/media"
	"github.com/muhammadgalhoum/DPS/internal/otel"
	"github.com/muhammadgalhoum/DPS/internal/repository/postgres"
	"github.com/muhammadgalhoum/DPS/internal/service"
	"github.com/muhammadgalhoum/DPS/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load(), skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create missing tables on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.AppConfig, skipMigrate bool) error {
	log := logger.Stdout(cfg.Location())

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Error().Str("event", "db_connect_failed").Err(err).Send()
		return err
	}
	defer db.Close()

	if !skipMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	blobs, err := storage.New(cfg)
	if err != nil {
		log.Error().Str("event", "storage_init_failed").Err(err).Send()
		return err
	}

	imageRepo := postgres.NewImagePostgres(db)
	pdfRepo := postgres.NewPDFPostgres(db)
	svc := handlers.Services{
		Upload: service.NewUploadService(blobs, imageRepo, pdfRepo),
		Images: service.NewImageService(blobs, imageRepo),
		PDFs:   service.NewPDFService(blobs, pdfRepo, media.NewRasterizer(cfg.Render)),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	app := newApp(cfg, log, metrics)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, db, svc)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("event", "server_start").Str("addr", addr).Str("storage_driver", cfg.Storage.Driver).Send()
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Str("event", "server_shutdown").Send()
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// newApp builds the fiber app with the global middleware chain.
func newApp(cfg *config.AppConfig, log zerolog.Logger, metrics *middleware.PrometheusMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "dps",
		BodyLimit:             cfg.MaxUploadBytes(),
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Recover(log))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	return app
}
