// Package config defines the server configuration and its loading rules.
//
// Configuration is layered: defaults, then an optional YAML file named by
// DEVROAST_CONFIG, then DEVROAST_-prefixed environment variables. Secrets
// (the bearer token and the operator identity) have no defaults and must be
// provided by the environment or the file.
package config

import "context"

// Config contains process configuration for the tool server.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8086".
	Addr string `koanf:"addr"`

	// AuthToken is the bearer token every tool call must present.
	AuthToken string `koanf:"auth_token"`

	// Identity is the operator identifier returned by the validate tool.
	Identity string `koanf:"identity"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8086",
	}
}
