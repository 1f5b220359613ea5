package http

import (
	"context"
	"net/http"
	"strings"

	"librarydb/internal/auth"
)

type contextKey string

const subjectKey contextKey = "subject"
const roleKey contextKey = "role"

// AuthMiddleware gates the write surface: a valid bearer token with the
// LIBRARIAN role is required; reads go through other routes unauthenticated.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil)
				return
			}
			if claims.Role != auth.RoleLibrarian {
				JSONError(w, http.StatusForbidden, "FORBIDDEN", "librarian role required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Sub)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SubjectFrom(r *http.Request) string {
	if v, ok := r.Context().Value(subjectKey).(string); ok {
		return v
	}
	return ""
}

func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}
