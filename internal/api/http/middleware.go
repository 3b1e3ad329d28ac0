package http

import (
	"context"
	"net/http"
	"strings"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware validates the Bearer token and injects the resulting
// Principal into the request context. Handlers pass it on to services
// explicitly; nothing below the HTTP layer reads the context for identity.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		principal := domain.Principal{ID: claims.UserID, Roles: claims.Roles}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey, principal)))
	})
}

func principalFrom(r *http.Request) domain.Principal {
	p, _ := r.Context().Value(principalKey).(domain.Principal)
	return p
}
