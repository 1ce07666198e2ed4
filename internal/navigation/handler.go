// Package navigation exposes the app route table and dev-server settings
// over the JSON API.
package navigation

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ots-portal/pkg/devserver"
	"github.com/JaimeStill/ots-portal/pkg/handlers"
	"github.com/JaimeStill/ots-portal/pkg/routes"
	"github.com/JaimeStill/ots-portal/pkg/routing"
)

// ErrPathRequired is returned when resolve is called without a path.
var ErrPathRequired = errors.New("path query parameter required")

// MapHTTPStatus maps routing errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, routing.ErrRouteNotFound), errors.Is(err, routing.ErrNameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPathRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type Handler struct {
	table     *routing.Table
	devserver *devserver.Config
	logger    *slog.Logger
}

func NewHandler(table *routing.Table, dev *devserver.Config, logger *slog.Logger) *Handler {
	return &Handler{
		table:     table,
		devserver: dev,
		logger:    logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/routes",
		Tags:        []string{"Navigation"},
		Description: "Navigable routes of the web app",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve, OpenAPI: Spec.Resolve},
			{Method: "GET", Pattern: "/{name}", Handler: h.Lookup, OpenAPI: Spec.Lookup},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) DevServerRoutes() routes.Group {
	return routes.Group{
		Prefix:      "/devserver",
		Tags:        []string{"Dev Server"},
		Description: "Development server settings for build tooling",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.DevServer, OpenAPI: Spec.DevServer},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.table.Routes())
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrPathRequired)
		return
	}

	route, err := h.table.Resolve(path)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, route)
}

func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	route, err := h.table.Lookup(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, route)
}

func (h *Handler) DevServer(w http.ResponseWriter, r *http.Request) {
	if h.devserver == nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Errorf("devserver config not loaded"))
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.devserver.Export())
}
