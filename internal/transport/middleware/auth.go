package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

type tokenValidator interface {
	Check(ctx context.Context, token string) (domain.Principal, error)
}

// Auth resolves the bearer token into a principal and stores it in the
// request context. Requests without a token pass through anonymously; an
// invalid token or a disabled account is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := validator.Check(r.Context(), token)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			noteUser(w, principal.UserID)
			ctx := ctxutil.WithUserID(r.Context(), principal.UserID)
			ctx = ctxutil.WithUsername(ctx, principal.Username)
			ctx = ctxutil.WithUserRole(ctx, principal.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
