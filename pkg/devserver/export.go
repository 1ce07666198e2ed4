package devserver

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Export is the tooling-facing shape of the configuration.
// AllowedHosts is the string "all" or a list of hosts.
type Export struct {
	AllowedHosts any          `json:"allowedHosts" yaml:"allowedHosts"`
	Client       ExportClient `json:"client" yaml:"client"`
}

// ExportClient mirrors ClientConfig for external tooling.
type ExportClient struct {
	WebSocketURL ExportWebSocketURL `json:"webSocketURL" yaml:"webSocketURL"`
}

// ExportWebSocketURL omits the port when it is unset.
type ExportWebSocketURL struct {
	Port *int `json:"port,omitempty" yaml:"port,omitempty"`
}

// Export converts the configuration into its tooling-facing shape.
func (c *Config) Export() Export {
	var hosts any = c.AllowedHosts
	if c.AllowsAllHosts() {
		hosts = AllHosts
	}

	var port *int
	if p, ok := c.WebSocketPort(); ok {
		port = &p
	}

	return Export{
		AllowedHosts: hosts,
		Client: ExportClient{
			WebSocketURL: ExportWebSocketURL{Port: port},
		},
	}
}

// JSON encodes the export as indented JSON.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c.Export(), "", "  ")
}

// YAML encodes the export as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.Export())
}
