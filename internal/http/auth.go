package httpapi

import (
	"context"
	"net/http"
	"strings"

	"nexus-backend-go/internal/services"
)

type contextKey string

const ctxAdminID contextKey = "adminID"

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func authenticate(tokens services.TokenService, r *http.Request, tokenStr string) (*http.Request, bool) {
	if tokenStr == "" {
		return r, false
	}
	token, claims, err := tokens.ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return r, false
	}
	adminID, _ := claims["sub"].(string)
	if adminID == "" {
		return r, false
	}
	return r.WithContext(context.WithValue(r.Context(), ctxAdminID, adminID)), true
}

// WithAuth rejects requests without a valid admin bearer token. When
// enforce is false every request passes through untouched.
func WithAuth(tokens services.TokenService, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enforce {
				next.ServeHTTP(w, r)
				return
			}
			authed, ok := authenticate(tokens, r, bearerToken(r))
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			next.ServeHTTP(w, authed)
		})
	}
}

func CurrentAdminID(r *http.Request) string {
	if value, ok := r.Context().Value(ctxAdminID).(string); ok {
		return value
	}
	return ""
}
