//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"alloggi/config"
	"alloggi/infras/otel"
	"alloggi/internal/stub/store"
	"alloggi/transport/http"
	"alloggi/transport/http/middleware"
	"alloggi/transport/http/router"

	authHandler "alloggi/internal/handlers/auth"
	bookingHandler "alloggi/internal/handlers/booking"
	statusHandler "alloggi/internal/handlers/status"
	unitHandler "alloggi/internal/handlers/unit"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	store.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewTokenAuthMiddleware,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	statusHandler.New,
	unitHandler.New,
	router.New,
)

// InitializeStubServer assembles the local stub backend.
func InitializeStubServer() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
