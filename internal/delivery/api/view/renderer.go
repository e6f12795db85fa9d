// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	WeatherPage   = "weather.html"
	AttendeesPage = "attendees.html"
)

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}

			return *s
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}
