// Package web provides infrastructure for serving web views with Go templates.
// Templates are parsed once at startup so rendering has no per-request parse
// cost and missing templates fail at construction rather than on first use.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef describes a renderable view: its template file, title, and script bundle.
type ViewDef struct {
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title          string
	Bundle         string
	BasePath       string
	RouteName      string
	LiveReloadPort int
	Data           any
}

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views          map[string]*template.Template
	basePath       string
	liveReloadPort int
}

// NewTemplateSet parses the layout templates and clones them once per view.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		templates[v.Template] = t
	}

	return &TemplateSet{
		views:    templates,
		basePath: basePath,
	}, nil
}

// SetLiveReloadPort exposes the dev-server websocket port to every view.
// Zero leaves it unset. Call before serving.
func (ts *TemplateSet) SetLiveReloadPort(port int) {
	ts.liveReloadPort = port
}

// Data builds the ViewData for a view, filling in set-wide values.
func (ts *TemplateSet) Data(view ViewDef) ViewData {
	return ViewData{
		Title:          view.Title,
		Bundle:         view.Bundle,
		BasePath:       ts.basePath,
		LiveReloadPort: ts.liveReloadPort,
	}
}

// RenderError writes status and renders the error view, falling back to a
// plain status text body if rendering fails.
func (ts *TemplateSet) RenderError(w http.ResponseWriter, layout string, view ViewDef, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := ts.execute(w, layout, view.Template, ts.Data(view)); err != nil {
		fmt.Fprint(w, http.StatusText(status))
	}
}

// Render executes the named layout template with the given view data.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, viewTemplate string, data ViewData) error {
	if _, ok := ts.views[viewTemplate]; !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return ts.execute(w, layout, viewTemplate, data)
}

func (ts *TemplateSet) execute(w http.ResponseWriter, layout, viewTemplate string, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	return t.ExecuteTemplate(w, layout, data)
}
