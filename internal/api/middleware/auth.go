package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/velmark/screenhunt/internal/api/apierr"
)

// AdminAuth creates middleware requiring the configured admin bearer token.
// An empty configured token disables the protected routes entirely rather
// than leaving them open.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := extractToken(r)
			if token == "" || presented == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
