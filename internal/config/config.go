package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/genregion"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory configuration.
type Paths struct {
	Catalog         string `toml:"catalog"`
	TranslationsDir string `toml:"translations_dir"`
	CreditsFile     string `toml:"credits_file"`
	AliasesFile     string `toml:"aliases_file"`
	LogDir          string `toml:"log_dir"`
	ExportDir       string `toml:"export_dir"`
}

// Languages describes the supported translation targets and how their
// artifact files are named.
type Languages struct {
	Codes       []string `toml:"codes"`
	FilePattern string   `toml:"file_pattern"`
}

// Generation configures the generated region markers and preview wording.
type Generation struct {
	BeginMarker string `toml:"begin_marker"`
	EndMarker   string `toml:"end_marker"`
	OrdinalWord string `toml:"ordinal_word"`
}

// Credits configures the contributor table layout.
type Credits struct {
	Columns        int `toml:"columns"`
	MajorThreshold int `toml:"major_threshold"`
}

// History configures the run history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for souvenirgen.
//
// Configuration sections:
//   - Paths: catalog manifest, artifact directory, credits document, aliases
//   - Languages: translation target codes and artifact naming
//   - Generation: sentinel markers and the preview ordinal word
//   - Credits: contributor table columns and the major threshold
//   - History: SQLite run history location
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Languages  Languages  `toml:"languages"`
	Generation Generation `toml:"generation"`
	Credits    Credits    `toml:"credits"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/souvenirgen/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("souvenirgen.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ArtifactPath returns the translation artifact location for a language code.
func (c *Config) ArtifactPath(code string) string {
	return filepath.Join(c.Paths.TranslationsDir, fmt.Sprintf(c.Languages.FilePattern, code))
}

// Markers returns the configured sentinel marker pair.
func (c *Config) Markers() genregion.Markers {
	return genregion.Markers{Begin: c.Generation.BeginMarker, End: c.Generation.EndMarker}
}

// EnsureDirectories creates the directories a run writes into. The export
// directory is created lazily by the exporter, not here.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) != "" {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
