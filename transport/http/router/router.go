package router

import (
	"stayhub/internal/handlers/admin"
	"stayhub/internal/handlers/booking"
	"stayhub/internal/handlers/export"
	"stayhub/internal/handlers/health"
	"stayhub/internal/handlers/place"
	"stayhub/internal/handlers/web"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Web     web.Handler
	Place   place.Handler
	Booking booking.Handler
	Admin   admin.Handler
	Export  export.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Web.Router(router)
	r.DomainHandlers.Place.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Admin.Router(router)
	r.DomainHandlers.Export.Router(router)
	r.DomainHandlers.Health.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
