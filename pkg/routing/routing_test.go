package routing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/JaimeStill/ots-portal/pkg/routing"
)

var testRoutes = []routing.Route{
	{Path: "/", Name: "Home", View: "home"},
	{Path: "/login", Name: "Login", View: "login"},
}

func TestNew(t *testing.T) {
	table, err := routing.New(testRoutes...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestNew_Empty(t *testing.T) {
	table, err := routing.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := table.Resolve("/"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Resolve() on empty table error = %v, want ErrRouteNotFound", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		routes []routing.Route
		want   error
	}{
		{
			"duplicate path",
			[]routing.Route{
				{Path: "/", Name: "Home", View: "home"},
				{Path: "/", Name: "Other", View: "other"},
			},
			routing.ErrDuplicatePath,
		},
		{
			"duplicate name",
			[]routing.Route{
				{Path: "/", Name: "Home", View: "home"},
				{Path: "/home", Name: "Home", View: "home"},
			},
			routing.ErrDuplicateName,
		},
		{
			"empty path",
			[]routing.Route{{Path: "", Name: "Home", View: "home"}},
			routing.ErrInvalidRoute,
		},
		{
			"relative path",
			[]routing.Route{{Path: "login", Name: "Login", View: "login"}},
			routing.ErrInvalidRoute,
		},
		{
			"empty name",
			[]routing.Route{{Path: "/login", Name: "", View: "login"}},
			routing.ErrInvalidRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routing.New(tt.routes...)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew() with duplicate paths did not panic")
		}
	}()

	routing.MustNew(
		routing.Route{Path: "/", Name: "A", View: "a"},
		routing.Route{Path: "/", Name: "B", View: "b"},
	)
}

func TestResolve(t *testing.T) {
	table := routing.MustNew(testRoutes...)

	tests := []struct {
		path     string
		wantName string
		wantView routing.View
	}{
		{"/", "Home", "home"},
		{"/login", "Login", "login"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, err := table.Resolve(tt.path)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.path, err)
			}
			if route.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", route.Name, tt.wantName)
			}
			if route.View != tt.wantView {
				t.Errorf("View = %q, want %q", route.View, tt.wantView)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	table := routing.MustNew(testRoutes...)

	paths := []string{"/nonexistent", "", "/login/", "/Login", "login", "/login?next=/"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			_, err := table.Resolve(path)
			if !errors.Is(err, routing.ErrRouteNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrRouteNotFound", path, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	table := routing.MustNew(testRoutes...)

	route, err := table.Lookup("Login")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if route.Path != "/login" {
		t.Errorf("Path = %q, want %q", route.Path, "/login")
	}

	if _, err := table.Lookup("Missing"); !errors.Is(err, routing.ErrNameNotFound) {
		t.Errorf("Lookup(Missing) error = %v, want ErrNameNotFound", err)
	}
}

func TestRoutes_PreservesOrder(t *testing.T) {
	table := routing.MustNew(testRoutes...)
	routes := table.Routes()

	if len(routes) != len(testRoutes) {
		t.Fatalf("Routes() length = %d, want %d", len(routes), len(testRoutes))
	}
	for i, r := range routes {
		if r != testRoutes[i] {
			t.Errorf("routes[%d] = %+v, want %+v", i, r, testRoutes[i])
		}
	}
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	table := routing.MustNew(testRoutes...)

	routes := table.Routes()
	routes[0].View = "mutated"

	route, err := table.Resolve("/")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if route.View != "home" {
		t.Errorf("table mutated through Routes(): View = %q", route.View)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := []routing.Route{
		{Path: "/", Name: "Home", View: "home"},
	}
	table := routing.MustNew(input...)

	input[0].View = "mutated"

	route, _ := table.Resolve("/")
	if route.View != "home" {
		t.Errorf("table mutated through input slice: View = %q", route.View)
	}
}

func TestResolve_Concurrent(t *testing.T) {
	table := routing.MustNew(testRoutes...)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := table.Resolve("/login"); err != nil {
				t.Errorf("Resolve() error = %v", err)
			}
			if _, err := table.Resolve("/missing"); !errors.Is(err, routing.ErrRouteNotFound) {
				t.Errorf("Resolve(/missing) error = %v", err)
			}
		}()
	}
	wg.Wait()
}
