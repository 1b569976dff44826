package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/floracart/floracart/internal/platform/httpx"
)

type contextKey struct{}

const sessionCookie = "floracart_session"

// RequireAdmin rejects requests without a valid admin session. The token
// is taken from the Authorization header or the session cookie.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := sm.Lookup(r.Context(), tokenFromRequest(r))
		if err != nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminFromContext returns the authenticated admin email, if any.
func AdminFromContext(ctx context.Context) string {
	email, _ := ctx.Value(contextKey{}).(string)
	return email
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return token
		}
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
