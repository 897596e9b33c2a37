// Package web holds the embedded HTML pages. The pages are a thin render
// layer over the JSON the handlers already produce; all behavior lives in
// internal/handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates once at startup.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
