package place

import (
	"net/http"

	"stayhub/infras/otel"
	"stayhub/internal/domains/place/model/dto"
	"stayhub/internal/domains/place/service"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/flash"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
	"stayhub/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "handler.place"

type Handler struct {
	service service.Place
	view    *view.Renderer
	flash   *flash.Flash
	otel    otel.Otel
}

func New(service service.Place, view *view.Renderer, flash *flash.Flash, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		flash:   flash,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/add_place", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.PlaceForm)
		routerGroup.Post("/", handler.CreatePlace)
	})
}

// PlaceForm renders the empty place-creation form.
func (handler *Handler) PlaceForm(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".PlaceForm")
	defer scope.End()

	handler.view.Render(writer, http.StatusOK, "add_place.html", view.Context{})
}

// CreatePlace reads the four required form fields, persists the place and
// redirects back to the listing. A missing field or a non-numeric amount
// is a client error; nothing is written in that case.
func (handler *Handler) CreatePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".CreatePlace")
	defer scope.End()

	if err := request.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse place form")

		handler.view.Error(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreatePlaceRequest{}

	if err := validator.ValidateForm(request.PostForm, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate place form")

		handler.view.Error(writer, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create place")

		handler.view.Error(writer, err)

		return
	}

	scope.AddEvent("Place created successfully")

	handler.flash.Set(writer, constant.FlashPlaceCreated)
	response.WithRedirect(writer, request, "/")
}
