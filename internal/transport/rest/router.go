package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/metrics"
	"github.com/heartmarshall/bluemoon-fees/internal/transport/middleware"
)

type principalResolver interface {
	Check(ctx context.Context, token string) (domain.Principal, error)
}

// RouterDeps carries everything NewRouter mounts. Metrics and MetricsHandler
// are optional.
type RouterDeps struct {
	Logger         *slog.Logger
	Principals     principalResolver
	CORS           config.CORSConfig
	RateLimiter    *middleware.RateLimiter
	AuthRateLimit  int
	Metrics        *metrics.Metrics
	MetricsPath    string
	MetricsHandler http.Handler

	Health        *HealthHandler
	Auth          *AuthHandler
	Fees          *FeeHandler
	Households    *HouseholdHandler
	Payments      *PaymentHandler
	Notifications *NotificationHandler
	Users         *UserHandler
	Reports       *ReportHandler
}

// NewRouter builds the HTTP API. Reads and creates need an authenticated
// principal; every other mutation, user management, notifications and the
// dashboard need ADMIN.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.CORS(d.CORS))
	r.Use(middleware.Auth(d.Principals))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil {
		r.Handle(d.MetricsPath, d.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			limited := r
			if d.RateLimiter != nil {
				limited = r.With(d.RateLimiter.Limit(d.AuthRateLimit))
			}
			limited.Post("/login", d.Auth.Login)
			limited.Post("/register", d.Auth.Register)
			r.With(middleware.RequireAuth).Post("/change-password", d.Auth.ChangePassword)
			r.With(middleware.RequireAuth).Get("/check", d.Auth.Check)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			mountFees(r, d.Fees)
			mountHouseholds(r, d.Households)
			mountPayments(r, d.Payments)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			mountNotifications(r, d.Notifications)
			mountUsers(r, d.Users)
			r.Get("/reports/summary", d.Reports.Summary)
		})
	})

	return r
}

func mountFees(r chi.Router, h *FeeHandler) {
	r.Route("/fees", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/overdue", h.Overdue)
		r.Get("/due-date-range", h.DueDateRange)
		r.Get("/type/{type}", h.ByType)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/statistics", h.Statistics)
		r.Post("/", h.Create)

		admin := r.With(middleware.RequireAdmin)
		admin.Put("/{id}", h.Update)
		admin.Patch("/{id}/status", h.SetStatus)
		admin.Delete("/{id}", h.Delete)
	})
}

func mountHouseholds(r chi.Router, h *HouseholdHandler) {
	r.Route("/households", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/payments", h.Payments)
		r.Get("/{id}/statistics", h.Statistics)
		r.Post("/", h.Create)

		admin := r.With(middleware.RequireAdmin)
		admin.Put("/{id}", h.Update)
		admin.Patch("/{id}/status", h.SetStatus)
		admin.Delete("/{id}", h.Delete)
	})
}

func mountPayments(r chi.Router, h *PaymentHandler) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/date-range", h.DateRange)
		r.Get("/household/{householdId}", h.ByHousehold)
		r.Get("/household/{householdId}/fee/{feeId}", h.ByHouseholdAndFee)
		r.Get("/fee/{feeId}", h.ByFee)
		r.Get("/statistics/household/{householdId}/total", h.TotalByHousehold)
		r.Get("/statistics/fee/{feeId}/total", h.TotalByFee)
		r.Get("/statistics/date-range/total", h.TotalByDateRange)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)

		admin := r.With(middleware.RequireAdmin)
		admin.Get("/unverified", h.Unverified)
		admin.Patch("/{id}/verify", h.Verify)
		admin.Patch("/{id}/unverify", h.Unverify)
		admin.Delete("/{id}", h.Delete)
	})
}

func mountNotifications(r chi.Router, h *NotificationHandler) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/unread", h.Unread)
		r.Get("/unread/count", h.UnreadCount)
		r.Get("/user/{userId}", h.ByUser)
		r.Patch("/{id}/read", h.MarkRead)
	})
}

func mountUsers(r chi.Router, h *UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Patch("/{id}/role", h.SetRole)
		r.Patch("/{id}/status", h.SetStatus)
	})
}
