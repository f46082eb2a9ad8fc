package middleware

import (
	"context"
	"net/http"
	"strings"

	"alloggi/internal/stub/store"
	"alloggi/shared/constant"
	"alloggi/transport/http/response"
)

type contextKey string

// ContextKeyToken carries the validated session token through the request.
const ContextKeyToken contextKey = "auth.token"

type TokenAuthMiddleware interface {
	RequireToken(next http.Handler) http.Handler
}

type tokenAuthMiddleware struct {
	store *store.Store
}

func NewTokenAuthMiddleware(st *store.Store) TokenAuthMiddleware {
	return &tokenAuthMiddleware{store: st}
}

func (m *tokenAuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constant.RequestHeaderAuthorization)

		token, ok := strings.CutPrefix(header, constant.AuthorizationTokenPrefix)
		if !ok || token == "" {
			response.WithDetail(w, http.StatusUnauthorized, "autenticazione richiesta")

			return
		}

		if !m.store.ValidToken(token) {
			response.WithDetail(w, http.StatusUnauthorized, "token non valido")

			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext returns the validated token, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyToken).(string)

	return token
}
