package navigation

import "github.com/JaimeStill/ots-portal/pkg/openapi"

type spec struct {
	List      *openapi.Operation
	Resolve   *openapi.Operation
	Lookup    *openapi.Operation
	DevServer *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List routes",
		Description: "Returns the route table in registration order",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Route table",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Route")}},
				},
			},
		},
	},
	Resolve: &openapi.Operation{
		Summary:     "Resolve path",
		Description: "Returns the route whose path exactly matches the query path",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "string", "Path to resolve, e.g. /login", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matched route", "Route"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Lookup: &openapi.Operation{
		Summary:     "Find route by name",
		Description: "Returns the route registered under name",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Route name, e.g. Login"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Named route", "Route"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	DevServer: &openapi.Operation{
		Summary:     "Dev-server settings",
		Description: "Returns allowed hosts and the websocket client port",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Dev-server settings", "DevServer"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Route": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path": {Type: "string", Example: "/login"},
				"name": {Type: "string", Example: "Login"},
				"view": {Type: "string", Example: "login"},
			},
			Required: []string{"path", "name", "view"},
		},
		"DevServer": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"allowedHosts": {Description: `"all" or a list of host names`, Example: "all"},
				"client":       {Type: "object", Description: "webSocketURL.port is present when set"},
			},
		},
	}
}
