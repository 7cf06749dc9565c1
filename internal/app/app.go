package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbss-cvut/termit-sub001/internal/adapter/postgres"
	"github.com/kbss-cvut/termit-sub001/internal/adapter/postgres/changelog"
	"github.com/kbss-cvut/termit-sub001/internal/adapter/postgres/comment"
	searchrepo "github.com/kbss-cvut/termit-sub001/internal/adapter/postgres/search"
	"github.com/kbss-cvut/termit-sub001/internal/adapter/postgres/user"
	"github.com/kbss-cvut/termit-sub001/internal/auth"
	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/dataloader"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
	"github.com/kbss-cvut/termit-sub001/internal/lastmodified"
	"github.com/kbss-cvut/termit-sub001/internal/metrics"
	"github.com/kbss-cvut/termit-sub001/internal/service/activity"
	"github.com/kbss-cvut/termit-sub001/internal/service/search"
	"github.com/kbss-cvut/termit-sub001/internal/transport/middleware"
	"github.com/kbss-cvut/termit-sub001/internal/transport/rest"
)

const eventBufferSize = 256

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	m := metrics.New()

	pool, err := postgres.NewPool(ctx, cfg.Database, m.QueryTracer())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	handler, bus, err := build(ctx, cfg, logger, pool, m)
	if err != nil {
		return err
	}

	bus.Start(context.WithoutCancel(ctx))
	defer bus.Stop()

	return serve(ctx, cfg.Server, logger, handler)
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	migrator, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up(ctx)
}

// build wires repositories, services and transport. The returned bus has
// its subscribers registered but is not started.
func build(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
) (http.Handler, *eventbus.Bus, error) {
	tmpl, err := searchrepo.LoadTemplate(cfg.Search.FTSTemplatePath)
	if err != nil {
		return nil, nil, err
	}

	// Repositories
	changes := changelog.New(pool, cfg.Repository)
	comments := comment.New(pool, cfg.Repository)
	users := user.New(pool)
	searches := searchrepo.New(pool, cfg.Repository, tmpl)

	lookups := &dataloader.Repos{User: users, Comment: comments}
	txm := postgres.NewTxManager(pool)

	// Last-modified cache, kept current by the event bus
	bus := eventbus.New(logger, eventBufferSize)
	tracker := lastmodified.New(logger, changes)
	bus.Subscribe("lastmodified", tracker)
	for _, t := range domain.AssetTypes {
		if _, err := tracker.Refresh(ctx, t); err != nil {
			logger.WarnContext(ctx, "warm last-modified cache",
				slog.String("asset_type", t.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	// Services
	activitySvc := activity.NewService(logger, cfg.Activity, activity.Deps{
		Changes:  changes,
		Comments: comments,
		Lookups:  lookups,
		Tx:       txm,
		Events:   bus,
		Modified: tracker,
		Metrics:  m,
	})
	searchSvc := search.NewService(logger, searches)

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	routes := rest.Routes{
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Check{
			"database": pool.Ping,
			"eventbus": bus.Ping,
		}, "database"),
		Activity: rest.NewActivityHandler(logger, activitySvc, cfg.Activity.DefaultLimit),
		Search:   rest.NewSearchHandler(logger, searchSvc, cfg.Search.DefaultPageSize),
		Middleware: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Logger(logger, m),
			middleware.Recovery(logger),
			middleware.Auth(logger, validator),
			dataloader.Middleware(lookups),
		},
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = m.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}

	return rest.NewRouter(routes), bus, nil
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}
