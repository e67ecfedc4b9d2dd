package ctxutil

import "context"

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	usernameKey  ctxKey = "username"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// roleAdmin mirrors domain.UserRoleAdmin; ctxutil must not import internal packages.
const roleAdmin = "ADMIN"

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns 0 and false if the value is missing, non-positive, or of the wrong type.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// WithUsername stores the authenticated username in the context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromCtx extracts the username. Returns "" if absent.
func UsernameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// WithUserRole stores the user's role in the context.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx extracts the role. Returns "" if absent.
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// IsAdminCtx reports whether the context principal holds the ADMIN role.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == roleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
