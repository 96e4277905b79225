package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	if err := c.validateCredits(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Catalog) == "" {
		return errors.New("paths.catalog must be set")
	}
	if strings.TrimSpace(c.Paths.TranslationsDir) == "" {
		return errors.New("paths.translations_dir must be set")
	}
	if strings.TrimSpace(c.Paths.CreditsFile) == "" {
		return errors.New("paths.credits_file must be set")
	}
	return nil
}

func (c *Config) validateLanguages() error {
	if len(c.Languages.Codes) == 0 {
		return errors.New("languages.codes must include at least one language")
	}
	for _, code := range c.Languages.Codes {
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("languages.codes: %q is not a valid BCP 47 tag: %w", code, err)
		}
	}
	pattern := c.Languages.FilePattern
	if strings.Count(pattern, "%") != 1 || !strings.Contains(pattern, "%s") {
		return fmt.Errorf("languages.file_pattern must contain exactly one %%s, got %q", pattern)
	}
	return nil
}

func (c *Config) validateGeneration() error {
	if c.Generation.BeginMarker == c.Generation.EndMarker {
		return errors.New("generation.begin_marker and generation.end_marker must differ")
	}
	for name, marker := range map[string]string{
		"generation.begin_marker": c.Generation.BeginMarker,
		"generation.end_marker":   c.Generation.EndMarker,
	} {
		if strings.ContainsAny(marker, "\r\n") {
			return fmt.Errorf("%s must be a single line", name)
		}
	}
	return nil
}

func (c *Config) validateCredits() error {
	if c.Credits.Columns < 1 {
		return errors.New("credits.columns must be positive")
	}
	if c.Credits.MajorThreshold < 0 {
		return errors.New("credits.major_threshold must be >= 0")
	}
	return nil
}
