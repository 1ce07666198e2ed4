// Package devserver holds the configuration consumed by front-end dev
// tooling: host-header validation and the live-reload websocket port.
package devserver

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	// AllHosts disables host-header validation when it is the only allowed host.
	AllHosts = "all"

	// CloudWebSocketPort is the websocket port used inside a cloud workspace,
	// where the dev server sits behind a TLS-terminating proxy.
	CloudWebSocketPort = 443

	// EnvWorkspaceID is the variable a cloud workspace sets to its workspace ID.
	EnvWorkspaceID = "GITPOD_WORKSPACE_ID"
)

// Env maps environment variable names for dev-server configuration.
type Env struct {
	WorkspaceID   string
	AllowedHosts  string
	WebSocketPort string
}

// DefaultEnv is the environment mapping used by the service configuration.
var DefaultEnv = &Env{
	WorkspaceID:   EnvWorkspaceID,
	AllowedHosts:  "DEVSERVER_ALLOWED_HOSTS",
	WebSocketPort: "DEVSERVER_WEBSOCKET_PORT",
}

// WebSocketURL configures the endpoint the live-reload client connects to.
// A nil Port leaves the tooling default in place.
type WebSocketURL struct {
	Port *int `toml:"port"`
}

// ClientConfig groups the settings pushed to the browser client.
type ClientConfig struct {
	WebSocketURL WebSocketURL `toml:"web_socket_url"`
}

// Config contains dev-server configuration.
type Config struct {
	AllowedHosts []string     `toml:"allowed_hosts"`
	Client       ClientConfig `toml:"client"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.AllowedHosts != nil {
		c.AllowedHosts = overlay.AllowedHosts
	}
	if overlay.Client.WebSocketURL.Port != nil {
		port := *overlay.Client.WebSocketURL.Port
		c.Client.WebSocketURL.Port = &port
	}
}

// WebSocketPort returns the configured websocket port and whether one is set.
func (c *Config) WebSocketPort() (int, bool) {
	if c.Client.WebSocketURL.Port == nil {
		return 0, false
	}
	return *c.Client.WebSocketURL.Port, true
}

// AllowsAllHosts reports whether host-header validation is disabled.
func (c *Config) AllowsAllHosts() bool {
	return len(c.AllowedHosts) == 1 && c.AllowedHosts[0] == AllHosts
}

// AllowsHost reports whether a Host header value passes validation.
// Loopback hosts are always accepted. Entries with a leading dot match the
// domain and any subdomain.
func (c *Config) AllowsHost(host string) bool {
	if c.AllowsAllHosts() {
		return true
	}

	hostname := strings.ToLower(stripPort(host))
	if hostname == "" {
		return false
	}
	if hostname == "localhost" {
		return true
	}
	if ip := net.ParseIP(hostname); ip != nil && ip.IsLoopback() {
		return true
	}

	for _, allowed := range c.AllowedHosts {
		allowed = strings.ToLower(allowed)
		if strings.HasPrefix(allowed, ".") {
			if hostname == allowed[1:] || strings.HasSuffix(hostname, allowed) {
				return true
			}
			continue
		}
		if hostname == allowed {
			return true
		}
	}
	return false
}

func (c *Config) loadDefaults() {
	if len(c.AllowedHosts) == 0 {
		c.AllowedHosts = []string{AllHosts}
	}
}

func (c *Config) loadEnv(env *Env) error {
	if env.AllowedHosts != "" {
		if v := os.Getenv(env.AllowedHosts); v != "" {
			hosts := strings.Split(v, ",")
			c.AllowedHosts = make([]string, 0, len(hosts))
			for _, host := range hosts {
				if trimmed := strings.TrimSpace(host); trimmed != "" {
					c.AllowedHosts = append(c.AllowedHosts, trimmed)
				}
			}
		}
	}

	if c.Client.WebSocketURL.Port == nil && env.WorkspaceID != "" {
		if v := os.Getenv(env.WorkspaceID); v != "" {
			port := CloudWebSocketPort
			c.Client.WebSocketURL.Port = &port
		}
	}

	if env.WebSocketPort != "" {
		if v := os.Getenv(env.WebSocketPort); v != "" {
			port, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", env.WebSocketPort, v, err)
			}
			c.Client.WebSocketURL.Port = &port
		}
	}
	return nil
}

func (c *Config) validate() error {
	if len(c.AllowedHosts) == 0 {
		return fmt.Errorf("allowed_hosts required")
	}
	if len(c.AllowedHosts) > 1 {
		for _, host := range c.AllowedHosts {
			if host == AllHosts {
				return fmt.Errorf("allowed_hosts: %q cannot be combined with other hosts", AllHosts)
			}
		}
	}
	if port, ok := c.WebSocketPort(); ok && (port < 1 || port > 65535) {
		return fmt.Errorf("invalid client.web_socket_url.port: %d", port)
	}
	return nil
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}
