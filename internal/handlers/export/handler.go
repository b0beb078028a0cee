package export

import (
	"net/http"

	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/service"
	"stayhub/internal/report"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "handler.export"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/export_excel", handler.ExportSpreadsheet)
	router.Get("/export_pdf", handler.ExportDocument)
}

// ExportSpreadsheet downloads every booking as an OOXML workbook.
func (handler *Handler) ExportSpreadsheet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".ExportSpreadsheet")
	defer scope.End()

	bookings, err := handler.service.ListAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings for spreadsheet export")

		response.WithError(writer, err)

		return
	}

	payload, err := report.Spreadsheet(bookings)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate spreadsheet")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	scope.AddEvent("Spreadsheet exported successfully")

	response.WithFile(writer, constant.ContentTypeSpreadsheet, constant.ExportFileNameSpreadsheet, payload)
}

// ExportDocument downloads every booking as a PDF table.
func (handler *Handler) ExportDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), otelScopeName, otelScopeName+".ExportDocument")
	defer scope.End()

	bookings, err := handler.service.ListAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings for document export")

		response.WithError(writer, err)

		return
	}

	payload, err := report.Document(bookings)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate document")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	scope.AddEvent("Document exported successfully")

	response.WithFile(writer, constant.ContentTypePDF, constant.ExportFileNameDocument, payload)
}
