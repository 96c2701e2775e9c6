// Package views renders the handful of server-side pages. It is a thin
// wrapper over html/template; all behavior lives in the handlers.
package views

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

type Views struct {
	templates *template.Template
}

func New() (*Views, error) {
	templates, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Views{templates: templates}, nil
}

func (v *Views) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("ERROR [views.Render] template %s: %v", name, err)
	}
}
