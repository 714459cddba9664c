package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if DEVROAST_CONFIG is set
//  3. env (prefix DEVROAST_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("DEVROAST_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DEVROAST_ADDR, DEVROAST_AUTH_TOKEN, ...
	// Map env keys like DEVROAST_AUTH_TOKEN -> auth_token (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DEVROAST_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "devroast_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.AuthToken == "" {
		return nil, fmt.Errorf("%w: auth_token must be set", ErrInvalidConfig)
	}
	if cfg.Identity == "" {
		return nil, fmt.Errorf("%w: identity must be set", ErrInvalidConfig)
	}
	return &cfg, nil
}
