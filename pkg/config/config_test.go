package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig

	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Expected Client Timeout 30s, got %v", cfg.Client.Timeout)
	}
	if cfg.Client.UserAgent != "fstream" {
		t.Errorf("Expected Client UserAgent 'fstream', got '%s'", cfg.Client.UserAgent)
	}
	if !cfg.Client.FollowRedirects {
		t.Error("Expected FollowRedirects to default to true")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected Logging Level 'INFO', got '%s'", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeTestConfig(t, `
client:
  timeout: 5s
  userAgent: "custom-agent"
  followRedirects: false
logging:
  level: "DEBUG"
`)

	cfg, loadedFrom, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loadedFrom != path {
		t.Errorf("Expected config loaded from %s, got %s", path, loadedFrom)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("Expected Client Timeout 5s, got %v", cfg.Client.Timeout)
	}
	if cfg.Client.UserAgent != "custom-agent" {
		t.Errorf("Expected Client UserAgent 'custom-agent', got '%s'", cfg.Client.UserAgent)
	}
	if cfg.Client.FollowRedirects {
		t.Error("Expected FollowRedirects false")
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected Logging Level 'DEBUG', got '%s'", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTestConfig(t, `
client:
  timeout: 5s
  userAgent: "from-file"
`)

	t.Setenv("FSTREAM_TIMEOUT", "90s")
	t.Setenv("FSTREAM_USER_AGENT", "from-env")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Client.Timeout != 90*time.Second {
		t.Errorf("Expected Client Timeout 90s, got %v", cfg.Client.Timeout)
	}
	if cfg.Client.UserAgent != "from-env" {
		t.Errorf("Expected Client UserAgent 'from-env', got '%s'", cfg.Client.UserAgent)
	}
	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected Logging Level 'WARN', got '%s'", cfg.Logging.Level)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "no-such-config.yml"))
	if err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTestConfig(t, "client: [not a mapping")
	if _, _, err := Load(path); err == nil {
		t.Error("Expected error for unparsable config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig
	cfg.Client.Timeout = -1 * time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for negative timeout")
	}

	cfg = DefaultConfig
	cfg.Logging.Level = "NOISY"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fstream.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}
