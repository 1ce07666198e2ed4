package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/ots-portal/internal/config"
)

func chdirRoot(t *testing.T) {
	t.Helper()
	t.Chdir("../../")
}

func TestLoad_BaseConfig(t *testing.T) {
	chdirRoot(t)
	t.Setenv("SERVICE_ENV", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.MaxBodySizeBytes() != 1000*1000 {
		t.Errorf("API.MaxBodySizeBytes() = %d, want 1000000", cfg.API.MaxBodySizeBytes())
	}
	if !cfg.DevServer.AllowsAllHosts() {
		t.Errorf("DevServer.AllowedHosts = %v, want [all]", cfg.DevServer.AllowedHosts)
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	chdirRoot(t)

	testOverlay := `shutdown_timeout = "60s"

[server]
port = 9090

[devserver]
allowed_hosts = [".gitpod.io"]
`

	if err := os.WriteFile("config.test.toml", []byte(testOverlay), 0644); err != nil {
		t.Fatalf("Failed to write test overlay: %v", err)
	}
	t.Cleanup(func() { os.Remove("config.test.toml") })

	t.Setenv("SERVICE_ENV", "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.DevServer.AllowsAllHosts() {
		t.Error("DevServer overlay not applied")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	chdirRoot(t)
	t.Setenv("SERVICE_ENV", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeout == "" {
		t.Error("ShutdownTimeout not set to default")
	}
	if cfg.Server.Host == "" {
		t.Error("Server.Host not set to default")
	}
	if cfg.Server.Port == 0 {
		t.Error("Server.Port not set to default")
	}
	if cfg.Logging.Level == "" {
		t.Error("Logging.Level not set to default")
	}
	if cfg.API.Pagination.DefaultPageSize == 0 {
		t.Error("API.Pagination.DefaultPageSize not set to default")
	}
	if cfg.API.OpenAPI.Title == "" {
		t.Error("API.OpenAPI.Title not set to default")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"duration", `shutdown_timeout = "invalid"`},
		{"body size", "[api]\nmax_body_size = \"lots\""},
		{"nested base path", "[api]\nbase_path = \"/api/v1\""},
		{"logging level", "[logging]\nlevel = \"loud\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirRoot(t)

			if err := os.WriteFile("config.invalid.toml", []byte(tt.overlay), 0644); err != nil {
				t.Fatalf("Failed to write test overlay: %v", err)
			}
			t.Cleanup(func() { os.Remove("config.invalid.toml") })

			t.Setenv("SERVICE_ENV", "invalid")

			if _, err := config.Load(); err == nil {
				t.Error("Load() succeeded with invalid overlay, want error")
			}
		})
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	chdirRoot(t)
	t.Setenv("SERVICE_ENV", "")
	t.Setenv("SERVICE_SHUTDOWN_TIMEOUT", "120s")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("API_MAX_BODY_SIZE", "2MB")
	t.Setenv("GITPOD_WORKSPACE_ID", "abc123")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "120s" {
		t.Errorf("ShutdownTimeout = %q, want %q (env override)", cfg.ShutdownTimeout, "120s")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d (env override)", cfg.Server.Port, 3000)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q (env override)", cfg.Logging.Level, "debug")
	}
	if cfg.API.MaxBodySizeBytes() != 2*1000*1000 {
		t.Errorf("API.MaxBodySizeBytes() = %d, want 2000000", cfg.API.MaxBodySizeBytes())
	}
	if port, ok := cfg.DevServer.WebSocketPort(); !ok || port != 443 {
		t.Errorf("DevServer.WebSocketPort() = %d, %v, want 443, true", port, ok)
	}
}

func TestMerge_RootConfig(t *testing.T) {
	base := &config.Config{ShutdownTimeout: "30s", Version: "0.1.0"}
	overlay := &config.Config{ShutdownTimeout: "60s", Domain: "https://ots.example"}

	base.Merge(overlay)

	if base.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q after merge, want %q", base.ShutdownTimeout, "60s")
	}
	if base.Version != "0.1.0" {
		t.Errorf("Version = %q after merge, want unchanged", base.Version)
	}
	if base.Domain != "https://ots.example" {
		t.Errorf("Domain = %q after merge, want overlay value", base.Domain)
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "45s"}

	if got := cfg.ShutdownTimeoutDuration(); got != 45*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want %v", got, 45*time.Second)
	}
}
