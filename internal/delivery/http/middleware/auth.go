package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

type contextKey string

const userHandleKey contextKey = "userHandle"

// SetUserHandle returns a context with the user handle set. Used by auth middleware.
func SetUserHandle(ctx context.Context, handle string) context.Context {
	return context.WithValue(ctx, userHandleKey, handle)
}

// UserHandleFromContext returns the authenticated user handle from the context, if present.
func UserHandleFromContext(ctx context.Context) (string, bool) {
	handle, ok := ctx.Value(userHandleKey).(string)
	return handle, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// user handle in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			handle, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetUserHandle(r.Context(), handle))
			next(w, r)
		}
	}
}
