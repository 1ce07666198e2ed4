package main

import (
	"net/http"

	"github.com/JaimeStill/ots-portal/internal/api"
	"github.com/JaimeStill/ots-portal/internal/config"
	"github.com/JaimeStill/ots-portal/internal/infrastructure"
	"github.com/JaimeStill/ots-portal/pkg/lifecycle"
	"github.com/JaimeStill/ots-portal/pkg/middleware"
	"github.com/JaimeStill/ots-portal/pkg/module"
	"github.com/JaimeStill/ots-portal/web/app"
	"github.com/JaimeStill/ots-portal/web/scalar"
)

const (
	appPrefix    = config.AppPrefix
	scalarPrefix = config.ScalarPrefix
)

type Modules struct {
	API    *api.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	port, _ := cfg.DevServer.WebSocketPort()
	appModule, err := app.NewModule(appPrefix, app.Options{
		LiveReloadPort: port,
		Logger:         infra.Logger,
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	scalarModule, err := scalar.NewModule(scalarPrefix, cfg.API.OpenAPI.Title, apiModule.SpecURL())
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure, modules *Modules) *module.Router {
	router := module.NewRouter()
	modules.Mount(router)

	for _, route := range app.Routes.Routes() {
		pattern := "GET " + route.Path
		if route.Path == "/" {
			pattern = "GET /{$}"
		}
		router.HandleNative(pattern, redirect(appPrefix+route.Path))
	}

	router.HandleNative("GET "+config.HealthzPrefix, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	checks := []lifecycle.ReadinessChecker{infra.Lifecycle, infra.Database}
	router.HandleNative("GET "+config.ReadyzPrefix, func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			if !c.Ready() {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("NOT READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}

// redirect sends root-level requests for an app route to its location
// under the app prefix, keeping the query string.
func redirect(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := target
		if r.URL.RawQuery != "" {
			url += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, url, http.StatusFound)
	}
}

// globalMiddleware wraps every request, including infrastructure endpoints.
func globalMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.AllowedHosts(&cfg.DevServer, infra.Logger))
	return mw
}
