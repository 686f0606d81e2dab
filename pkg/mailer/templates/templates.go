package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

// RenderHTML renders the named embedded template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	t, err := htmpl.ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
