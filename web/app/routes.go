package app

import (
	"github.com/JaimeStill/ots-portal/pkg/routing"
	"github.com/JaimeStill/ots-portal/pkg/web"
)

// View handles owned by the app.
const (
	HomeView  routing.View = "home"
	LoginView routing.View = "login"
)

// Routes is the navigable route table of the app.
var Routes = routing.MustNew(
	routing.Route{Path: "/", Name: "Home", View: HomeView},
	routing.Route{Path: "/login", Name: "Login", View: LoginView},
)

var views = map[routing.View]web.ViewDef{
	HomeView:  {Template: "home.html", Title: "Home", Bundle: "app"},
	LoginView: {Template: "login.html", Title: "Login", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
