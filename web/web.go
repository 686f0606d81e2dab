// Package web embeds the HTML templates for the rendered pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates; panics on a broken build.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
