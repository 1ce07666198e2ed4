package routing

import "errors"

// Resolution and construction errors.
var (
	// ErrRouteNotFound indicates no registered route matches the requested path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrNameNotFound indicates no registered route carries the requested name.
	ErrNameNotFound = errors.New("route name not found")

	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrInvalidRoute  = errors.New("invalid route")
)
