package api

import (
	"net/http"

	"github.com/JaimeStill/ots-portal/internal/navigation"
	"github.com/JaimeStill/ots-portal/internal/users"
	"github.com/JaimeStill/ots-portal/pkg/openapi"
	"github.com/JaimeStill/ots-portal/pkg/routes"
	"github.com/JaimeStill/ots-portal/web/app"
)

func registerRoutes(
	mux *http.ServeMux,
	basePath string,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	usersHandler := users.NewHandler(domain.Users, runtime.Logger, runtime.Pagination)
	navHandler := navigation.NewHandler(app.Routes, runtime.DevServer, runtime.Logger)

	routes.Register(
		mux,
		basePath,
		spec,
		navHandler.Routes(),
		navHandler.DevServerRoutes(),
		usersHandler.Routes(),
	)
}
