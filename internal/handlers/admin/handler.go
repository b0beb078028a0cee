package admin

import (
	"net/http"
	"strings"

	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/service"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "handler.admin"

// Handler serves the admin booking review pages. The admin surface carries
// no authentication.
type Handler struct {
	service service.Booking
	view    *view.Renderer
	otel    otel.Otel
}

func New(service service.Booking, view *view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Bookings)
		routerGroup.Post("/", handler.FilterBookings)
	})
}

// Bookings renders every booking with its place resolved.
func (handler *Handler) Bookings(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, "")
}

// FilterBookings narrows the listing to bookings whose user_name contains
// the submitted filter text. A blank filter falls back to the full list.
func (handler *Handler) FilterBookings(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		log.Error().Err(err).Msg("failed to parse filter form")

		handler.view.Error(writer, failure.BadRequest(err))

		return
	}

	filterName := strings.TrimSpace(request.PostFormValue(constant.FormFieldFilterName))

	handler.render(writer, request, filterName)
}

func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, filterName string) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".Bookings")
	defer scope.End()

	bookings, err := handler.service.List(ctx, filterName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		handler.view.Error(writer, err)

		return
	}

	handler.view.Render(writer, http.StatusOK, "admin_bookings.html", view.Context{
		"bookings":    bookings,
		"filter_name": filterName,
	})
}
