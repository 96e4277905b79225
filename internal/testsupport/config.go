package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Catalog = filepath.Join(base, "assets", "catalog.json")
	cfg.Paths.TranslationsDir = filepath.Join(base, "translations")
	cfg.Paths.CreditsFile = filepath.Join(base, "CONTRIBUTORS.md")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "translations", "messages")
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLanguages overrides the translation target codes on the test config.
func WithLanguages(codes ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Languages.Codes = codes
	}
}

// WithHistoryDisabled turns off run history recording on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// WithAliases points the test config at a contributor alias file.
func WithAliases(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.AliasesFile = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.TranslationsDir)
}
