package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mawenner/tally/internal/auth"
	"github.com/mawenner/tally/internal/common"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ClientIDKey is the context key for storing the authenticated client ID.
const ClientIDKey contextKey = "client_id"

// GetClientID extracts the client ID from the context.
// Returns empty string if not found.
func GetClientID(ctx context.Context) string {
	clientID, _ := ctx.Value(ClientIDKey).(string)
	return clientID
}

// RequireAuth returns middleware that validates bearer tokens and rejects
// unauthenticated requests. A nil manager disables auth entirely and passes
// every request through; this is how open deployments run.
func RequireAuth(manager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", auth.ErrMissingToken.Error())
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", auth.ErrInvalidToken.Error())
				return
			}

			claims, err := manager.Validate(parts[1])
			if err != nil {
				common.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), ClientIDKey, claims.ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
