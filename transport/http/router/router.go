package router

import (
	"github.com/go-chi/chi/v5"

	"alloggi/internal/handlers/auth"
	"alloggi/internal/handlers/booking"
	"alloggi/internal/handlers/status"
	"alloggi/internal/handlers/unit"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Unit    unit.Handler
	Booking booking.Handler
	Status  status.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts everything under /api, the prefix the real backend
// serves from.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Unit.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Status.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
