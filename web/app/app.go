// Package app provides the web application module with embedded templates and assets.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ots-portal/pkg/module"
	"github.com/JaimeStill/ots-portal/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

// Options configures the app module.
type Options struct {
	// LiveReloadPort is the dev-server websocket port advertised to the
	// client bundle. Zero omits it.
	LiveReloadPort int
	Logger         *slog.Logger
}

// NewModule creates the app module configured for the given base path.
func NewModule(basePath string, opts Options) (*module.Module, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "app")

	all := make([]web.ViewDef, 0, len(views)+1)
	for _, route := range Routes.Routes() {
		all = append(all, views[route.View])
	}
	all = append(all, notFoundView)

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		all,
	)
	if err != nil {
		return nil, err
	}
	ts.SetLiveReloadPort(opts.LiveReloadPort)

	nav, err := web.NewNavigator(Routes, ts, layout, views, notFoundView, logger)
	if err != nil {
		return nil, err
	}

	return module.New(basePath, buildRouter(nav)), nil
}

func buildRouter(nav *web.Navigator) http.Handler {
	r := web.NewRouter()
	r.SetFallback(nav.ServeHTTP)

	r.HandleFunc("GET /dist/{file}", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
