package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env names the variables that override logging settings. Empty names are skipped.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// Config selects the handler the service logs through.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`

	// AddSource annotates each record with the calling file and line.
	AddSource bool `toml:"add_source"`
}

// Finalize fills unset fields, applies env, and rejects unknown levels or formats.
// Level and format values are matched case-insensitively.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}

	c.Level = Level(strings.ToLower(strings.TrimSpace(string(c.Level))))
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge copies the overlay's set fields. An overlay can enable AddSource
// but not turn it off.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	c.AddSource = c.AddSource || overlay.AddSource
}

func (c *Config) loadEnv(env *Env) error {
	if v := lookup(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := lookup(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := lookup(env.AddSource); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", env.AddSource, v, err)
		}
		c.AddSource = on
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
