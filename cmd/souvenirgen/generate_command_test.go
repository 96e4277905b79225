package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWritesArtifactsAndCredits(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"generate"}, env.configPath)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	requireContains(t, stdout, "Regeneration summary")
	requireContains(t, stdout, "translation")
	requireContains(t, stdout, "credits")
	requireContains(t, stdout, "artifact file missing")

	artifact, err := os.ReadFile(env.cfg.ArtifactPath("de"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(artifact)
	requireContains(t, content, `"Red":   "Rot",`)
	requireContains(t, content, "WireSequenceCount")

	credits, err := os.ReadFile(env.cfg.Paths.CreditsFile)
	if err != nil {
		t.Fatalf("read credits: %v", err)
	}
	requireContains(t, string(credits), "# Contributors")
}

func TestGenerateSkipCreditsAndLanguageSubset(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"generate", "--skip-credits", "--language", "de"}, env.configPath)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if strings.Contains(stdout, "credits") {
		t.Fatalf("expected no credits row in output:\n%s", stdout)
	}
	if strings.Contains(stdout, "artifact file missing") {
		t.Fatalf("expected ja to be excluded from the run:\n%s", stdout)
	}
	if _, err := os.Stat(env.cfg.Paths.CreditsFile); !os.IsNotExist(err) {
		t.Fatalf("credits file should not exist, stat err = %v", err)
	}
}

func TestGenerateExportFlagWritesMessages(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"generate", "--export", "--language", "de"}, env.configPath)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	requireContains(t, stdout, "export")
	exportPath := filepath.Join(env.cfg.Paths.ExportDir, "active.de.toml")
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), "WireSequenceColor")
}

func TestTranslationsRejectsUnknownLanguage(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"translations", "fr"}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for an unconfigured language")
	}
	requireContains(t, err.Error(), "not configured")
}

func TestContributorsOnlyTouchesCredits(t *testing.T) {
	env := setupCLITestEnv(t)

	before, err := os.ReadFile(env.cfg.ArtifactPath("de"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	if _, _, err := runCLI(t, []string{"contributors"}, env.configPath); err != nil {
		t.Fatalf("contributors failed: %v", err)
	}

	after, err := os.ReadFile(env.cfg.ArtifactPath("de"))
	if err != nil {
		t.Fatalf("reread artifact: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("contributors run modified a translation artifact")
	}
	if _, err := os.Stat(env.cfg.Paths.CreditsFile); err != nil {
		t.Fatalf("credits file missing: %v", err)
	}
}

func TestGenerateFailsWhenCatalogMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.Remove(env.cfg.Paths.Catalog); err != nil {
		t.Fatalf("remove catalog: %v", err)
	}

	_, _, err := runCLI(t, []string{"generate"}, env.configPath)
	if err == nil {
		t.Fatal("expected generate to fail without a catalog")
	}
}
