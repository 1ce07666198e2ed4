// Package routing maps navigation paths to named views.
// A Table is built once at startup from a literal route list and is
// read-only afterwards, so it can be shared across goroutines freely.
package routing

import (
	"fmt"
	"strings"
)

// View is an opaque handle to a renderable unit. The UI layer owns its
// meaning; the table only carries it.
type View string

// Route maps a URL path to a named view.
type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
	View View   `json:"view"`
}

// Table is an ordered, immutable set of routes with unique paths and names.
type Table struct {
	routes []Route
	paths  map[string]int
	names  map[string]int
}

// New validates the routes and builds a Table preserving registration order.
func New(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		paths:  make(map[string]int, len(routes)),
		names:  make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, ok := t.paths[r.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		if _, ok := t.names[r.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}

		t.paths[r.Path] = len(t.routes)
		t.names[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// MustNew is like New but panics on an invalid route list.
// Intended for package-level literal tables.
func MustNew(routes ...Route) *Table {
	t, err := New(routes...)
	if err != nil {
		panic(fmt.Sprintf("routing: %v", err))
	}
	return t
}

// Resolve returns the route whose path exactly matches path.
// Unmatched paths return an error wrapping ErrRouteNotFound.
func (t *Table) Resolve(path string) (Route, error) {
	i, ok := t.paths[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	return t.routes[i], nil
}

// Lookup returns the route registered under name.
// Unknown names return an error wrapping ErrNameNotFound.
func (t *Table) Lookup(name string) (Route, error) {
	i, ok := t.names[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	return t.routes[i], nil
}

// Routes returns a copy of the routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

func validate(r Route) error {
	if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must begin with /", ErrInvalidRoute, r.Path)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: route %s requires a name", ErrInvalidRoute, r.Path)
	}
	return nil
}
