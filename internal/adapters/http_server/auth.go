package httpserver

import (
	"context"
	"net/http"
	"strings"

	"spotstay/internal/adapters/observability"
	"spotstay/internal/domain"
)

type contextKey string

const requesterKey contextKey = "requester"

func contextWithRequester(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, requesterKey, userID)
}

// RequesterID returns the authenticated requester's user id, if any.
func RequesterID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(requesterKey).(int64)
	return id, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// Authenticate resolves a bearer token into the requester identity when
// one is presented. Anonymous requests pass through untouched; routes
// that require identity wrap RequireAuth on top.
func Authenticate(tokens domain.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := tokens.Resolve(r.Context(), token)
			if err != nil {
				observability.ObserveAuthReject("invalid")
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(contextWithRequester(r.Context(), userID)))
		})
	}
}

// RequireAuth rejects requests that carry no resolved requester identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequesterID(r.Context()); !ok {
			observability.ObserveAuthReject("missing")
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
