package booking

import (
	"net/http"
	"strconv"

	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/flash"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
	"stayhub/transport/http/view"

	placeService "stayhub/internal/domains/place/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "handler.booking"

type Handler struct {
	service      service.Booking
	placeService placeService.Place
	view         *view.Renderer
	flash        *flash.Flash
	otel         otel.Otel
}

func New(service service.Booking, placeService placeService.Place, view *view.Renderer, flash *flash.Flash, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		placeService: placeService,
		view:         view,
		flash:        flash,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	// Non-numeric place ids fall through to the router's own not-found
	// response.
	router.Route("/book/{place_id:[0-9]+}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.BookingForm)
		routerGroup.Post("/", handler.CreateBooking)
	})
}

// BookingForm renders the booking form pre-populated with the resolved
// place, or a not-found page when the place does not exist.
func (handler *Handler) BookingForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".BookingForm")
	defer scope.End()

	placeID, err := handler.placeID(request)
	if err != nil {
		scope.TraceError(err)
		handler.view.Error(writer, err)

		return
	}

	place, err := handler.placeService.Get(ctx, placeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("placeID", placeID).Msg("failed to get place for booking form")

		handler.view.Error(writer, err)

		return
	}

	handler.view.Render(writer, http.StatusOK, "book_place.html", view.Context{
		"place": place,
	})
}

// CreateBooking resolves the place, reads the three required form fields,
// persists a booking and redirects to the listing. An unknown place id
// aborts with not-found before the form is read.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".CreateBooking")
	defer scope.End()

	placeID, err := handler.placeID(request)
	if err != nil {
		scope.TraceError(err)
		handler.view.Error(writer, err)

		return
	}

	if _, err := handler.placeService.Get(ctx, placeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("placeID", placeID).Msg("failed to get place for booking")

		handler.view.Error(writer, err)

		return
	}

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")

		handler.view.Error(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.ValidateForm(request.PostForm, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking form")

		handler.view.Error(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req, placeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("placeID", placeID).Msg("failed to create booking")

		handler.view.Error(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	handler.flash.Set(writer, constant.FlashBookingCreated)
	response.WithRedirect(writer, request, "/")
}

func (handler *Handler) placeID(request *http.Request) (int, error) {
	placeID, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamPlaceID))
	if err != nil {
		return 0, failure.InvalidPlaceIDParam
	}

	return placeID, nil
}
