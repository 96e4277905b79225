package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLanguages()
	c.normalizeGeneration()
	c.normalizeCredits()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.Catalog, err = expandPath(c.Paths.Catalog); err != nil {
		return fmt.Errorf("paths.catalog: %w", err)
	}
	if c.Paths.TranslationsDir, err = expandPath(c.Paths.TranslationsDir); err != nil {
		return fmt.Errorf("paths.translations_dir: %w", err)
	}
	if c.Paths.CreditsFile, err = expandPath(c.Paths.CreditsFile); err != nil {
		return fmt.Errorf("paths.credits_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.AliasesFile) != "" {
		if c.Paths.AliasesFile, err = expandPath(c.Paths.AliasesFile); err != nil {
			return fmt.Errorf("paths.aliases_file: %w", err)
		}
	} else {
		c.Paths.AliasesFile = ""
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = filepath.Join(c.Paths.TranslationsDir, "messages")
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLanguages() {
	codes := make([]string, 0, len(c.Languages.Codes))
	seen := make(map[string]struct{}, len(c.Languages.Codes))
	for _, code := range c.Languages.Codes {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		codes = append(codes, normalized)
	}
	c.Languages.Codes = codes

	c.Languages.FilePattern = strings.TrimSpace(c.Languages.FilePattern)
	if c.Languages.FilePattern == "" {
		c.Languages.FilePattern = defaultFilePattern
	}
}

func (c *Config) normalizeGeneration() {
	c.Generation.BeginMarker = strings.TrimSpace(c.Generation.BeginMarker)
	if c.Generation.BeginMarker == "" {
		c.Generation.BeginMarker = defaultBeginMarker
	}
	c.Generation.EndMarker = strings.TrimSpace(c.Generation.EndMarker)
	if c.Generation.EndMarker == "" {
		c.Generation.EndMarker = defaultEndMarker
	}
	c.Generation.OrdinalWord = strings.TrimSpace(c.Generation.OrdinalWord)
	if c.Generation.OrdinalWord == "" {
		c.Generation.OrdinalWord = defaultOrdinalWord
	}
}

func (c *Config) normalizeCredits() {
	if c.Credits.Columns == 0 {
		c.Credits.Columns = defaultCreditsColumns
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
