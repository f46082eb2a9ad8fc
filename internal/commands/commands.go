// Package commands holds the CLI surface: browsing the catalog, checking
// availability, driving a booking end to end and managing the session.
package commands

import (
	"alloggi/config"
	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	authService "alloggi/internal/domains/auth/service"
	availService "alloggi/internal/domains/availability/service"
	bookingService "alloggi/internal/domains/booking/service"
	unitService "alloggi/internal/domains/unit/service"
	"alloggi/shared/session"
)

// App wires the client-side services a command needs. It is built once
// per invocation, after the root command has set up logging.
type App struct {
	Config   *config.Config
	API      bookingapi.Client
	Units    unitService.Unit
	Engine   availService.Availability
	Workflow bookingService.Workflow
	Auth     authService.Auth
}

func newApp() *App {
	cfg := config.Get()
	otl := otel.New(cfg)
	sess := session.NewFileStore(cfg.API.TokenFile)
	api := bookingapi.New(cfg, sess, otl)
	engine := availService.New(api, otl)

	return &App{
		Config:   cfg,
		API:      api,
		Units:    unitService.New(api, otl),
		Engine:   engine,
		Workflow: bookingService.New(api, engine, otl),
		Auth:     authService.New(api, sess, otl),
	}
}
