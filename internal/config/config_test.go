package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[providers.tmdb]
api_key = "abc123"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8585 {
		t.Errorf("port = %d, want 8585", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.Server.LogLevel)
	}
	if cfg.Database.Path != "./data/screenfind.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Providers.TMDB.URL != "https://api.themoviedb.org" {
		t.Errorf("tmdb url = %q", cfg.Providers.TMDB.URL)
	}
	if cfg.Providers.TVMaze.URL != "https://api.tvmaze.com" {
		t.Errorf("tvmaze url = %q", cfg.Providers.TVMaze.URL)
	}
	if !cfg.TVMazeEnabled() {
		t.Error("tvmaze should default to enabled")
	}
}

func TestLoadEnvSubstitution(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")

	path := writeConfig(t, `
[providers.tmdb]
api_key = "${TMDB_API_KEY}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.TMDB.APIKey != "from-env" {
		t.Errorf("api_key = %q, want from-env", cfg.Providers.TMDB.APIKey)
	}
}

func TestLoadUnresolvedEnvVar(t *testing.T) {
	path := writeConfig(t, `
[providers.tmdb]
api_key = "${SCREENFIND_MISSING_VAR}"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unresolved env var")
	}
	if !strings.Contains(err.Error(), "SCREENFIND_MISSING_VAR") {
		t.Errorf("error should name the unresolved variable, got: %v", err)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for missing api key")
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if !cfgErr.HasErrors() {
		t.Error("ConfigError should report errors")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidatePortAndLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Providers.TMDB.APIKey = "k"
	cfg.Server.Port = 70000
	cfg.Server.LogLevel = "loud"

	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestTVMazeDisabled(t *testing.T) {
	path := writeConfig(t, `
[providers.tmdb]
api_key = "abc"

[providers.tvmaze]
enabled = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TVMazeEnabled() {
		t.Error("tvmaze should be disabled")
	}
}

func TestWriteDefaultThenLoad(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "generated-key")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.TMDB.APIKey != "generated-key" {
		t.Errorf("api_key = %q", cfg.Providers.TMDB.APIKey)
	}
}
