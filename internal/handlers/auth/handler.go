package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"alloggi/infras/otel"
	"alloggi/internal/stub/store"
	"alloggi/shared/constant"
	"alloggi/shared/validator"
	"alloggi/transport/http/middleware"
	"alloggi/transport/http/response"
)

type Handler struct {
	store *store.Store
	auth  middleware.TokenAuthMiddleware
	otel  otel.Otel
}

func New(st *store.Store, auth middleware.TokenAuthMiddleware, otl otel.Otel) Handler {
	return Handler{
		store: st,
		auth:  auth,
		otel:  otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login/", handler.Login)
		routerGroup.With(handler.auth.RequireToken).Post("/logout/", handler.Logout)
	})
}

type loginBody struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an opaque session token.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var body loginBody
	if err := validator.Validate(r.Body, &body); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	token, ok := handler.store.Authenticate(body.Username, body.Password)
	if !ok {
		log.Warn().Str("username", body.Username).Msg("login rejected")
		response.WithDetail(w, http.StatusBadRequest, "credenziali non valide")

		return
	}

	scope.AddEvent("User logged in")

	response.WithJSON(w, http.StatusOK, loginResponse{Token: token})
}

// Logout revokes the presented token.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.store.RevokeToken(middleware.TokenFromContext(ctx))

	response.WithDetail(w, http.StatusOK, "sessione terminata")
}
