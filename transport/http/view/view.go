// Package view renders the server-side HTML pages. Handlers hand it a
// template name and a context mapping; it writes back the markup.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"stayhub/shared/constant"
	"stayhub/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

type Context map[string]any

type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	return &Renderer{templates: templates}
}

// Render executes the named template with the given context mapping.
// The page is built in memory first so template failures surface as an
// error response instead of a half-written page.
func (r *Renderer) Render(writer http.ResponseWriter, code int, name string, data Context) {
	var page bytes.Buffer

	if err := r.templates.ExecuteTemplate(&page, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render page")

		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := page.WriteTo(writer); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to write page")
	}
}

// Error renders the standard error page with the failure's HTTP code.
func (r *Renderer) Error(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	r.Render(writer, code, "error.html", Context{
		"code":    code,
		"status":  http.StatusText(code),
		"message": err.Error(),
	})
}
