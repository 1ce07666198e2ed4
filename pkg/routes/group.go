// Package routes declares HTTP route groups that register on a ServeMux and
// describe themselves in an OpenAPI document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/ots-portal/pkg/openapi"
)

// Route is a single HTTP endpoint. Routes without OpenAPI metadata are
// served but left out of the generated document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group's routes, children, and schemas under basePath.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g *Group) addToSpec(basePath string, spec *openapi.Spec) {
	if len(g.Schemas) > 0 {
		if spec.Components == nil {
			spec.Components = openapi.NewComponents()
		}
		spec.Components.AddSchemas(g.Schemas)
	}

	prefix := basePath + g.Prefix
	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		path := prefix + route.Pattern
		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}

		switch route.Method {
		case http.MethodGet:
			item.Get = &op
		case http.MethodPost:
			item.Post = &op
		case http.MethodPut:
			item.Put = &op
		case http.MethodDelete:
			item.Delete = &op
		}
	}

	for i := range g.Children {
		g.Children[i].addToSpec(prefix, spec)
	}
}

// Register adds every route of groups to mux and documents them in spec.
// Mux patterns are relative to the module, spec paths include basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		register(mux, "", group)
		group.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		path := prefix + route.Pattern
		if path == "" {
			path = "/"
		}
		mux.HandleFunc(route.Method+" "+path, route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}
