package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/auth"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type checkResponse struct {
	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	result, err := h.svc.Login(r.Context(), auth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:    result.Token,
		Username: result.Username,
		Role:     result.Role.String(),
	})
}

// Register handles POST /api/auth/register. New accounts always get USER.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*u))
}

// ChangePassword handles POST /api/auth/change-password for the caller.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /api/auth/check. The Auth middleware has already
// resolved the principal; this reports it back.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{
		UserID:        id,
		Username:      ctxutil.UsernameFromCtx(r.Context()),
		Role:          ctxutil.UserRoleFromCtx(r.Context()),
		Authenticated: true,
	})
}
