package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/internal/adapter/redisbus"
	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/internal/transport/middleware"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and optionally Redis, seeds default accounts, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("notification_mode", cfg.Notification.DispatchMode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var bus *redisbus.Bus
	if cfg.Redis.Enabled {
		bus, err = redisbus.Connect(ctx, logger, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer bus.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := NewContainer(cfg, logger, pool, bus, registry)

	if cfg.Bootstrap.SeedUsers {
		seeded, err := c.Auth.Bootstrap(ctx, cfg.Bootstrap)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("seeded default accounts")
		}
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Router(cfg, logger, pool, bus, limiter, registry),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if bus != nil {
		g.Go(func() error {
			return bus.Subscribe(gctx, func(ev redisbus.Event) {
				logger.Info("notification event",
					slog.Int64("id", ev.ID),
					slog.String("entity_type", ev.EntityType),
					slog.Int64("entity_id", ev.EntityID),
					slog.String("title", ev.Title),
				)
			})
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
