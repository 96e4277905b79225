package main

import (
	"context"
	"testing"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/testsupport"
)

func TestHistoryListsRecordedRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"generate"}, env.configPath); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	store := testsupport.MustOpenStore(t, env.cfg)
	runs, err := store.RecentRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	requireContains(t, stdout, runs[0].RunID)
	requireContains(t, stdout, "Questions")
}

func TestHistoryShowsRunDetail(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"generate"}, env.configPath); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	store := testsupport.MustOpenStore(t, env.cfg)
	runs, err := store.RecentRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}

	stdout, _, err := runCLI(t, []string{"history", runs[0].RunID}, env.configPath)
	if err != nil {
		t.Fatalf("history detail failed: %v", err)
	}
	requireContains(t, stdout, "Run "+runs[0].RunID)
	requireContains(t, stdout, "Credits written")
	requireContains(t, stdout, "translation")
}

func TestHistoryRejectsUnknownRun(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"history", "no-such-run"}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for an unknown run id")
	}
	requireContains(t, err.Error(), "not found")
}

func TestHistoryWithoutRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	requireContains(t, stdout, "No runs recorded yet")
}

func TestHistoryRequiresEnabledStore(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err == nil {
		t.Fatal("expected an error when history is disabled")
	}
	requireContains(t, err.Error(), "history is disabled")
}
