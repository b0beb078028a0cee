package web

import (
	"net/http"

	"stayhub/infras/otel"
	"stayhub/internal/domains/place/service"
	"stayhub/shared/flash"
	"stayhub/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "handler.web"

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
	router.Get("/", handler.Index)
}

// Index renders the listing page with every place and the pending flash
// notice, if any.
func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".Index")
	defer scope.End()

	places, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get places")

		handler.view.Error(writer, err)

		return
	}

	handler.view.Render(writer, http.StatusOK, "index.html", view.Context{
		"places": places,
		"flash":  handler.flash.Pop(writer, request),
	})
}
