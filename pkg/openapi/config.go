package openapi

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultTitle       = "OTS Portal API"
	defaultDescription = "Route table, dev-server settings, and user directory for the OTS portal."
)

// Env names the variables that override the document metadata.
type Env struct {
	Title       string
	Description string
}

// Config is the document metadata shown by the API reference page.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Finalize applies env over the configured values, falls back to the
// portal defaults, and rejects a title that is only whitespace.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.Title = override(env.Title, c.Title)
		c.Description = override(env.Description, c.Description)
	}
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Description == "" {
		c.Description = defaultDescription
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	return nil
}

// Merge copies the overlay's non-empty fields.
func (c *Config) Merge(overlay *Config) {
	c.Title = cmpOr(overlay.Title, c.Title)
	c.Description = cmpOr(overlay.Description, c.Description)
}

func override(name, current string) string {
	if name == "" {
		return current
	}
	return cmpOr(os.Getenv(name), current)
}

func cmpOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
