package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEVROAST_AUTH_TOKEN", "secret-token")
	t.Setenv("DEVROAST_IDENTITY", "919999999999")
	t.Setenv("DEVROAST_ADDR", ":9000")
	t.Setenv("DEVROAST_LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AuthToken != "secret-token" {
		t.Errorf("AuthToken = %q, want %q", cfg.AuthToken, "secret-token")
	}
	if cfg.Identity != "919999999999" {
		t.Errorf("Identity = %q, want %q", cfg.Identity, "919999999999")
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9000")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEVROAST_AUTH_TOKEN", "secret-token")
	t.Setenv("DEVROAST_IDENTITY", "919999999999")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8086" {
		t.Errorf("Addr = %q, want default %q", cfg.Addr, ":8086")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{"DEVROAST_IDENTITY": "919999999999"}},
		{"missing identity", map[string]string{"DEVROAST_AUTH_TOKEN": "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(context.Background())
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "auth_token: file-token\nidentity: file-identity\naddr: \":7070\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("DEVROAST_CONFIG", path)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AuthToken != "file-token" {
		t.Errorf("AuthToken = %q, want %q", cfg.AuthToken, "file-token")
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7070")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "auth_token: file-token\nidentity: file-identity\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("DEVROAST_CONFIG", path)
	t.Setenv("DEVROAST_AUTH_TOKEN", "env-token")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AuthToken != "env-token" {
		t.Errorf("AuthToken = %q, want env override %q", cfg.AuthToken, "env-token")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("DEVROAST_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DEVROAST_AUTH_TOKEN", "secret")
	t.Setenv("DEVROAST_IDENTITY", "id")

	_, err := Load(context.Background())
	if !errors.Is(err, ErrLoadConfig) {
		t.Errorf("Load() error = %v, want ErrLoadConfig", err)
	}
}
