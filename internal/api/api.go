// Package api assembles the JSON API module: domain systems, their route
// groups, and the generated OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/ots-portal/internal/config"
	"github.com/JaimeStill/ots-portal/internal/infrastructure"
	"github.com/JaimeStill/ots-portal/pkg/middleware"
	"github.com/JaimeStill/ots-portal/pkg/module"
	"github.com/JaimeStill/ots-portal/pkg/openapi"
)

// SpecPattern is the module-relative path of the OpenAPI document.
const SpecPattern = "/openapi.json"

// Module is the mounted API together with the document describing it.
type Module struct {
	*module.Module
	Spec *openapi.Spec
}

// NewModule builds the API module from the configuration and shared infrastructure.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, cfg.API.BasePath, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET "+SpecPattern, openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return &Module{Module: m, Spec: spec}, nil
}

// SpecURL returns the absolute path the OpenAPI document is served from.
func (m *Module) SpecURL() string {
	return m.Prefix() + SpecPattern
}
