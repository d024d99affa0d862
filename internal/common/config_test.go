package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Clients.ProfileStore.GetTimeout().Seconds() != 5 {
		t.Errorf("profile store timeout = %v, want 5s", cfg.Clients.ProfileStore.GetTimeout())
	}
	if cfg.Clients.Gemini.GetTimeout().Seconds() != 15 {
		t.Errorf("gemini timeout = %v, want 15s", cfg.Clients.Gemini.GetTimeout())
	}
	if cfg.OfflineMode {
		t.Error("offline mode should default to false")
	}
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compass.toml")
	content := `
environment = "staging"

[server]
port = 9090

[clients.gemini]
model = "gemini-2.0-flash"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("COMPASS_PORT", "7001")
	t.Setenv("OFFLINE_MODE", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "staging" {
		t.Errorf("environment = %q, want staging", cfg.Environment)
	}
	if cfg.Clients.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q, want gemini-2.0-flash", cfg.Clients.Gemini.Model)
	}
	// Env override wins over file
	if cfg.Server.Port != 7001 {
		t.Errorf("port = %d, want 7001 from COMPASS_PORT", cfg.Server.Port)
	}
	if !cfg.OfflineMode {
		t.Error("OFFLINE_MODE=true should enable offline mode")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestGetTimeout_InvalidFallsBack(t *testing.T) {
	c := ProfileStoreConfig{Timeout: "not-a-duration"}
	if c.GetTimeout().Seconds() != 5 {
		t.Errorf("invalid timeout should fall back to 5s, got %v", c.GetTimeout())
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	key, err := ResolveAPIKey("gemini_api_key", "file-key")
	if err != nil {
		t.Fatalf("ResolveAPIKey failed: %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, env should win over config fallback", key)
	}

	t.Setenv("GEMINI_API_KEY", "")
	key, err = ResolveAPIKey("gemini_api_key", "file-key")
	if err != nil {
		t.Fatalf("ResolveAPIKey failed: %v", err)
	}
	if key != "file-key" {
		t.Errorf("key = %q, want config fallback", key)
	}

	if _, err := ResolveAPIKey("gemini_api_key", ""); err == nil {
		t.Error("expected error when key is nowhere configured")
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{Environment: "Production"}
	if !cfg.IsProduction() {
		t.Error("'Production' should count as production")
	}
	cfg.Environment = "development"
	if cfg.IsProduction() {
		t.Error("'development' should not count as production")
	}
}
