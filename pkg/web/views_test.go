package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/ots-portal/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var (
	homeView     = web.ViewDef{Template: "home.html", Title: "Home", Bundle: "app"}
	loginView    = web.ViewDef{Template: "login.html", Title: "Login", Bundle: "app"}
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
)

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"testdata/layouts/*.html", "testdata/views", "/app",
		[]web.ViewDef{homeView, loginView, notFoundView},
	)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		viewSubdir string
		views      []web.ViewDef
	}{
		{"layout glob", "nonexistent/*.html", "testdata/views", []web.ViewDef{homeView}},
		{"view subdir", "testdata/layouts/*.html", "nonexistent", []web.ViewDef{homeView}},
		{"missing template", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "missing.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.layoutGlob, tt.viewSubdir, "/app", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() should return error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	data := web.ViewData{Title: "Test", Bundle: "test-bundle", BasePath: "/app"}

	if err := ts.Render(w, "test.html", "home.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	resp := w.Result()
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Test</title>",
		"Home Page",
		"/app/dist/test-bundle.js",
		`data-basepath="/app"`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(string(body), "data-ws-port") {
		t.Error("body should not carry data-ws-port when unset")
	}
}

func TestRender_NotFound(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	if err := ts.Render(w, "test.html", "missing.html", web.ViewData{}); err == nil {
		t.Error("Render() with unknown template should return error")
	}
}

func TestSetLiveReloadPort(t *testing.T) {
	ts := newTemplateSet(t)
	ts.SetLiveReloadPort(443)

	w := httptest.NewRecorder()
	if err := ts.Render(w, "test.html", homeView.Template, ts.Data(homeView)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, `data-ws-port="443"`) {
		t.Errorf("body missing data-ws-port: %s", body)
	}
}

func TestRenderError(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.RenderError(w, "test.html", notFoundView, http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Error("body does not contain error view content")
	}
}

func TestRenderError_MissingView(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.RenderError(w, "test.html", web.ViewDef{Template: "missing.html"}, http.StatusInternalServerError)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if got := w.Body.String(); got != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("body = %q, want status text", got)
	}
}
