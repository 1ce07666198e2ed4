package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ots-portal/pkg/routing"
)

// ErrViewNotRegistered indicates a route references a view with no ViewDef.
var ErrViewNotRegistered = errors.New("view not registered")

// Navigator serves a routing.Table as HTML views. Each request path is
// resolved against the table and the matched route's view is rendered
// inside layout. Paths the table does not know render the not-found view.
type Navigator struct {
	table     *routing.Table
	templates *TemplateSet
	layout    string
	views     map[routing.View]ViewDef
	notFound  ViewDef
	logger    *slog.Logger
}

// NewNavigator checks that every route in table has a ViewDef in views.
// The not-found view and every view must already be parsed into templates.
func NewNavigator(
	table *routing.Table,
	templates *TemplateSet,
	layout string,
	views map[routing.View]ViewDef,
	notFound ViewDef,
	logger *slog.Logger,
) (*Navigator, error) {
	for _, route := range table.Routes() {
		if _, ok := views[route.View]; !ok {
			return nil, fmt.Errorf("%w: route %s uses view %q", ErrViewNotRegistered, route.Name, route.View)
		}
	}

	return &Navigator{
		table:     table,
		templates: templates,
		layout:    layout,
		views:     views,
		notFound:  notFound,
		logger:    logger,
	}, nil
}

func (n *Navigator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	route, err := n.table.Resolve(path)
	if err != nil {
		if errors.Is(err, routing.ErrRouteNotFound) {
			n.logger.Debug("route not found", "path", path)
			n.templates.RenderError(w, n.layout, n.notFound, http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := n.views[route.View]
	data := n.templates.Data(view)
	data.RouteName = route.Name

	if err := n.templates.Render(w, n.layout, view.Template, data); err != nil {
		n.logger.Error("render failed", "route", route.Name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
