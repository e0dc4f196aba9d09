// Package render parses the HTML page templates once at startup and
// executes them by file name.
package render

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

var funcMap = template.FuncMap{
	"formatTime": formatTime,
	"nl2br":      nl2br,
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 at 3:04 PM")
}

func nl2br(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

type Renderer struct {
	templates map[string]*template.Template
}

// New parses every *.html file in dir as a standalone page template.
func New(dir string) (*Renderer, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}

	templates := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := filepath.Base(file)
		tmpl, err := template.New(name).Funcs(funcMap).ParseFiles(file)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// HTML executes the named page template with the given status and data.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		log.Printf("ERROR render: unknown template %q", name)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("ERROR render %s: %v", name, err)
	}
}

// Error renders the generic 500 page.
func (r *Renderer) Error(w http.ResponseWriter) {
	r.HTML(w, http.StatusInternalServerError, "error.html", nil)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter) {
	r.HTML(w, http.StatusNotFound, "notfound.html", nil)
}
