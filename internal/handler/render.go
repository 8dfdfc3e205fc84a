package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes a named view with its data
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// TemplateRenderer renders the embedded HTML templates
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses all embedded templates
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render executes the template registered under name, e.g. "learn.html"
func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
