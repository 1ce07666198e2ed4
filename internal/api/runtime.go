package api

import (
	"github.com/JaimeStill/ots-portal/internal/config"
	"github.com/JaimeStill/ots-portal/internal/infrastructure"
	"github.com/JaimeStill/ots-portal/pkg/devserver"
	"github.com/JaimeStill/ots-portal/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	DevServer  *devserver.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Pagination: cfg.API.Pagination,
		DevServer:  &cfg.DevServer,
	}
}
