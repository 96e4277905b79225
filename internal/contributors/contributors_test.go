package contributors

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
)

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAliases(t *testing.T) {
	path := writeAliasFile(t, `
Timwi:
  - timwi
  - TimwiTep
Alice:
  - " alice "
`)
	a, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases() error = %v", err)
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"timwi", "Timwi"},
		{"TimwiTep", "Timwi"},
		{"Timwi", "Timwi"},
		{"alice", "Alice"},
		{"Unlisted", "Unlisted"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := a.Canonical(tt.raw); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLoadAliasesEmptyPath(t *testing.T) {
	a, err := LoadAliases("")
	if err != nil {
		t.Fatalf("LoadAliases(\"\") error = %v", err)
	}
	if a != nil {
		t.Errorf("got %v, want nil aliases", a)
	}
	if got := a.Canonical("Bob"); got != "Bob" {
		t.Errorf("nil aliases Canonical = %q", got)
	}
}

func TestLoadAliasesMissingFile(t *testing.T) {
	if _, err := LoadAliases(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadAliases() succeeded on missing file, want error")
	}
}

func TestLoadAliasesConflict(t *testing.T) {
	path := writeAliasFile(t, `
Alice:
  - ally
Bob:
  - ally
`)
	_, err := LoadAliases(path)
	if err == nil {
		t.Fatal("LoadAliases() succeeded, want conflict error")
	}
	if !strings.Contains(err.Error(), "claimed by both") {
		t.Errorf("error %q does not describe the conflict", err)
	}
}

func TestLoadAliasesMalformed(t *testing.T) {
	path := writeAliasFile(t, "just a scalar")
	if _, err := LoadAliases(path); err == nil {
		t.Fatal("LoadAliases() succeeded on malformed YAML, want error")
	}
}

func TestCollect(t *testing.T) {
	mods := []catalog.Module{
		{Name: "Wires", Contributor: "Alice"},
		{Name: "Maze", Contributor: "alice"},
		{Name: "Button", Contributor: "Bob"},
	}
	aliases := Aliases{"Alice": {"alice"}}

	got := Collect(mods, aliases)
	want := map[string][]string{
		"Alice": {"Wires", "Maze"},
		"Bob":   {"Button"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectWithoutAliases(t *testing.T) {
	mods := []catalog.Module{
		{Name: "Wires", Contributor: "Alice"},
		{Name: "Maze", Contributor: "Alice"},
	}
	got := Collect(mods, nil)
	if !reflect.DeepEqual(got, map[string][]string{"Alice": {"Wires", "Maze"}}) {
		t.Errorf("Collect() = %v", got)
	}
}
