package health

import (
	"net/http"

	"stayhub/infras/postgres"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if err := handler.db.Read.PingContext(request.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed to ping database")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "ok")
}
