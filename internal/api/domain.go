package api

import (
	"github.com/JaimeStill/ots-portal/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users users.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Users: users.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
