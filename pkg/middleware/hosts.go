package middleware

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ots-portal/pkg/devserver"
)

// AllowedHosts returns middleware that rejects requests whose Host header is
// not permitted by the dev-server configuration. It is a no-op when the
// configuration allows all hosts.
func AllowedHosts(cfg *devserver.Config, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.AllowsAllHosts() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.AllowsHost(r.Host) {
				logger.Warn("rejected host header", "host", r.Host, "uri", r.URL.RequestURI())
				http.Error(w, "Invalid Host header", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
