package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/internal/api"
	"github.com/chzzmarket/market-api/internal/api/handlers"
	"github.com/chzzmarket/market-api/internal/auth"
	"github.com/chzzmarket/market-api/internal/cache"
	"github.com/chzzmarket/market-api/internal/catalog"
	"github.com/chzzmarket/market-api/internal/config"
	"github.com/chzzmarket/market-api/internal/imagestore"
	"github.com/chzzmarket/market-api/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the image cleanup scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")
	return cmd
}

func runServe(parent context.Context, migrate bool) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		SampleRatio:    cfg.Telemetry.SampleRatio,
		MetricInterval: cfg.Telemetry.MetricInterval,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if migrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	images, err := imagestore.New(imagestore.Config{
		Endpoint:   cfg.Storage.Endpoint,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		UseSSL:     cfg.Storage.UseSSL,
		CDNBaseURL: cfg.Storage.CDNBaseURL,
	}, imagestore.WithLogger(log))
	if err != nil {
		return fmt.Errorf("creating image store: %w", err)
	}
	if err := images.EnsureBucket(ctx); err != nil {
		return err
	}

	checks := map[string]handlers.CheckFunc{
		"database": st.Ping,
		"storage":  images.Ping,
	}

	opts := catalogOptions(cfg, log)
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		opts = append(opts, catalog.WithImageCache(cache.NewRedisImageCache(rdb, cfg.Cache.ImageTTL)))
		checks["cache"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info("image path cache enabled", "addr", cfg.Redis.Addr)
	}
	cat := catalog.New(st, images, opts...)

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, auth.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return fmt.Errorf("creating token verifier: %w", err)
	}

	sched, err := catalog.NewScheduler(cat, cfg.Schedule.ImageCleanupInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	e, _ := api.NewRouter(api.Deps{
		Products: cat,
		Checks:   checks,
		Tokens:   tokens,
		Log:      log,
		Limits: handlers.ProductsConfig{
			DefaultPageSize: cfg.Pagination.DefaultSize,
			MaxPageSize:     cfg.Pagination.MaxSize,
			MaxUploadBytes:  cfg.Server.MaxUploadBytes,
		},
		Version:     Version,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	log.Info("starting server", "addr", addr, "version", Version)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func catalogOptions(cfg *config.Config, log *slog.Logger) []catalog.Option {
	return []catalog.Option{
		catalog.WithLogger(log),
		catalog.WithDeleteRate(cfg.Storage.DeleteRate, cfg.Storage.DeleteBurst),
		catalog.WithMaxImageSize(cfg.Storage.MaxImageSize),
		catalog.WithSweepBatchSize(cfg.Schedule.ImageCleanupBatch),
		catalog.WithStaleClaimAfter(cfg.Schedule.StaleClaimAfter),
	}
}
