// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"zamek/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp state directory
// per test. It defaults the credential fields so validation passes and
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Notion.Token = "test-token"
	cfg.Notion.DatabaseID = "db1"
	cfg.Command.SharedSecret = "tajny-klucz"
	cfg.Daemon.APIBind = "127.0.0.1:0"
	cfg.Daemon.StateDir = filepath.Join(base, "state")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSharedSecret sets the link-signing secret on the test config.
func WithSharedSecret(secret string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Command.SharedSecret = secret
	}
}

// WithNotionBaseURL points the workspace client at a test server.
func WithNotionBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Notion.BaseURL = url
	}
}

// WithAPIToken sets the daemon bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Daemon.APIToken = token
	}
}
