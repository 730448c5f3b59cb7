package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReadsCamelCaseKeys(t *testing.T) {
	path := writeConfig(t, "apiKey: key-from-file\nbaseURL: https://api.test/v1\noutput:\n  format: text\n  pretty: true\n")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIKey != "key-from-file" {
		t.Fatalf("expected apiKey from file, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://api.test/v1" {
		t.Fatalf("expected baseURL from file, got %q", cfg.BaseURL)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Pretty {
		t.Fatalf("expected output section decoded, got %+v", cfg.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatalf("defaulted path should tolerate a missing file, got %v", err)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}

	if _, err := Load(missing, true); err == nil {
		t.Fatalf("explicitly requested file must exist")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "apiKey: [unclosed\n")

	if _, err := Load(path, true); err == nil {
		t.Fatalf("expected decode error for malformed yaml")
	}
}

func TestApplyEnvOverridesFileValues(t *testing.T) {
	t.Setenv("SUPADATA_API_KEY", "key-from-env")
	t.Setenv("SUPADATA_BASE_URL", "https://env.test/v1")

	cfg := &Config{APIKey: "key-from-file", BaseURL: "https://file.test/v1"}
	cfg.ApplyEnv()

	if cfg.APIKey != "key-from-env" {
		t.Fatalf("expected env api key to win, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://env.test/v1" {
		t.Fatalf("expected env base url to win, got %q", cfg.BaseURL)
	}
}
