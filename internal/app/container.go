package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/audit"
	feerepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/fee"
	householdrepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/household"
	notificationrepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/notification"
	paymentrepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/payment"
	userrepo "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres/user"
	"github.com/heartmarshall/bluemoon-fees/internal/adapter/redisbus"
	"github.com/heartmarshall/bluemoon-fees/internal/auth"
	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/internal/metrics"
	authsvc "github.com/heartmarshall/bluemoon-fees/internal/service/auth"
	"github.com/heartmarshall/bluemoon-fees/internal/service/fee"
	"github.com/heartmarshall/bluemoon-fees/internal/service/household"
	"github.com/heartmarshall/bluemoon-fees/internal/service/notification"
	"github.com/heartmarshall/bluemoon-fees/internal/service/payment"
	"github.com/heartmarshall/bluemoon-fees/internal/service/query"
	"github.com/heartmarshall/bluemoon-fees/internal/service/report"
	"github.com/heartmarshall/bluemoon-fees/internal/service/user"
	"github.com/heartmarshall/bluemoon-fees/internal/transport/middleware"
	"github.com/heartmarshall/bluemoon-fees/internal/transport/rest"
)

// Container holds the wired services. It is shared by the server and the CLI.
type Container struct {
	Metrics       *metrics.Metrics
	Users         *user.Service
	Auth          *authsvc.Service
	Notifications *notification.Service
	Fees          *fee.Service
	Households    *household.Service
	Payments      *payment.Service
	Reports       *report.Service
	Query         *query.Service
}

// NewContainer wires repositories and services over pool. bus may be nil,
// in which case notifications are stored but not fanned out.
func NewContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, bus *redisbus.Bus, reg prometheus.Registerer) *Container {
	tx := postgres.NewTxManager(pool)
	m := metrics.New(reg)

	users := userrepo.New(pool)
	fees := feerepo.New(pool)
	households := householdrepo.New(pool)
	payments := paymentrepo.New(pool)
	notifications := notificationrepo.New(pool)
	audit := auditrepo.New(pool)

	userService := user.NewService(logger, users, audit, tx, cfg.Auth.PasswordHashCost)

	mode := notification.BestEffort
	if cfg.Notification.IsStrict() {
		mode = notification.Strict
	}
	// A nil *redisbus.Bus must not reach the interface as a typed nil.
	var notificationService *notification.Service
	if bus != nil {
		notificationService = notification.NewService(logger, notifications, userService, bus, m, mode)
	} else {
		notificationService = notification.NewService(logger, notifications, userService, nil, m, mode)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Container{
		Metrics:       m,
		Users:         userService,
		Auth:          authsvc.NewService(logger, users, userService, jwt),
		Notifications: notificationService,
		Fees:          fee.NewService(logger, fees, notificationService, audit, tx, m),
		Households:    household.NewService(logger, households, notificationService, audit, tx, m),
		Payments:      payment.NewService(logger, payments, households, fees, notificationService, audit, tx, m),
		Reports:       report.NewService(logger, fees, households, payments, notifications),
		Query:         query.NewService(logger, payments, households, fees),
	}
}

// Router builds the HTTP handler for the container's services.
func (c *Container) Router(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, bus *redisbus.Bus, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) http.Handler {
	extras := map[string]rest.Pinger{}
	if bus != nil {
		extras["redis"] = bus
	}

	deps := rest.RouterDeps{
		Logger:        logger,
		Principals:    c.Auth,
		CORS:          cfg.CORS,
		RateLimiter:   limiter,
		AuthRateLimit: cfg.Server.AuthRateLimit,
		Metrics:       c.Metrics,

		Health:        rest.NewHealthHandler(pool, BuildVersion(), extras),
		Auth:          rest.NewAuthHandler(c.Auth, logger),
		Fees:          rest.NewFeeHandler(c.Fees, c.Query, c.Reports, logger),
		Households:    rest.NewHouseholdHandler(c.Households, c.Query, c.Reports, logger),
		Payments:      rest.NewPaymentHandler(c.Payments, c.Query, logger),
		Notifications: rest.NewNotificationHandler(c.Notifications, logger),
		Users:         rest.NewUserHandler(c.Users, logger),
		Reports:       rest.NewReportHandler(c.Reports, logger),
	}
	if cfg.Metrics.Enabled {
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return rest.NewRouter(deps)
}
