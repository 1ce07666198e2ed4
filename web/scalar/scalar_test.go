package scalar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/ots-portal/pkg/module"
	"github.com/JaimeStill/ots-portal/web/scalar"
)

func newRouter(t *testing.T) *module.Router {
	t.Helper()
	m, err := scalar.NewModule("/scalar", "OTS Portal API", "/api/openapi.json")
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	router := module.NewRouter()
	router.Mount(m)
	return router
}

func TestServeIndex(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/scalar", "/scalar/"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", ct)
			}

			body := w.Body.String()
			if !strings.Contains(body, `data-url="/api/openapi.json"`) {
				t.Error("index does not reference the OpenAPI document")
			}
			if !strings.Contains(body, "<title>OTS Portal API</title>") {
				t.Error("index missing title")
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scalar/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
