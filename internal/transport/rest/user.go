package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/user"
)

type userService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input user.UpdateUserInput) (*domain.User, error)
	SetRole(ctx context.Context, id int64, role domain.UserRole) (*domain.User, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserHandler serves /api/users. Every route is admin-only.
type UserHandler struct {
	users userService
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Enabled  *bool  `json:"enabled"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

func parseRole(s string) domain.UserRole {
	return domain.UserRole(strings.ToUpper(strings.TrimSpace(s)))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.users.CreateUser(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     parseRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*u))
}

// Update handles PUT /api/users/{id}. A missing enabled flag means enabled.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	u, err := h.users.UpdateUser(r.Context(), id, user.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     parseRole(req.Role),
		Enabled:  enabled,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// SetRole handles PATCH /api/users/{id}/role {"role": "ADMIN"|"USER"}.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.users.SetRole(r.Context(), id, parseRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// SetStatus handles PATCH /api/users/{id}/status {"enabled": bool}.
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req enabledRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Enabled == nil {
		handleError(h.log, w, r, domain.NewValidationError("enabled", "required"))
		return
	}
	u, err := h.users.SetEnabled(r.Context(), id, *req.Enabled)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
