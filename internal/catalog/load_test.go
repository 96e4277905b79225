package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `{
  "modules": [
    {"name": "Wires", "contributor": "Alice"},
    {"name": "Maze", "contributor": "Bob"}
  ],
  "questions": [
    {
      "id": "wiresColor",
      "module": "Wires",
      "useArticle": true,
      "text": "What was the color of the {1} wire in {0}?",
      "answers": ["red", "blue", "yellow"],
      "translateAnswers": true,
      "arguments": ["first", "second", "third"],
      "argumentGroupSize": 1,
      "translatableArguments": [true]
    },
    {
      "id": "mazeStart",
      "module": "Maze",
      "text": "Where did you start in {0}?",
      "answers": ["A1", "B2"]
    }
  ]
}`

func TestParseValidManifest(t *testing.T) {
	c, err := Parse([]byte(validManifest), "manifest.json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := len(c.Modules); got != 2 {
		t.Errorf("got %d modules, want 2", got)
	}
	if got := c.QuestionCount(); got != 2 {
		t.Errorf("QuestionCount() = %d, want 2", got)
	}
	q := c.Questions[0]
	if !q.UseArticle || !q.TranslateAnswers {
		t.Errorf("boolean fields not decoded: %+v", q)
	}
	if q.ArgumentGroupSize != 1 {
		t.Errorf("ArgumentGroupSize = %d, want 1", q.ArgumentGroupSize)
	}
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "malformed json",
			manifest: `{"modules": [`,
			wantErr:  "parse manifest",
		},
		{
			name:     "no questions",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}], "questions": []}`,
			wantErr:  "no questions",
		},
		{
			name: "empty module name",
			manifest: `{"modules": [{"name": " ", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t"}]}`,
			wantErr: "empty name",
		},
		{
			name: "module name whitespace",
			manifest: `{"modules": [{"name": "Wires ", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires ", "text": "t"}]}`,
			wantErr: "surrounding whitespace",
		},
		{
			name: "duplicate module",
			manifest: `{"modules": [
					{"name": "Wires", "contributor": "Alice"},
					{"name": "Wires", "contributor": "Bob"}
				],
				"questions": [{"id": "q", "module": "Wires", "text": "t"}]}`,
			wantErr: "declared twice",
		},
		{
			name: "missing contributor",
			manifest: `{"modules": [{"name": "Wires", "contributor": ""}],
				"questions": [{"id": "q", "module": "Wires", "text": "t"}]}`,
			wantErr: "missing contributor",
		},
		{
			name: "empty question id",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "", "module": "Wires", "text": "t"}]}`,
			wantErr: "empty id",
		},
		{
			name: "duplicate question id",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [
					{"id": "q", "module": "Wires", "text": "t"},
					{"id": "q", "module": "Wires", "text": "t"}
				]}`,
			wantErr: `id "q" declared twice`,
		},
		{
			name: "unknown module",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Maze", "text": "t"}]}`,
			wantErr: "unknown module",
		},
		{
			name: "empty question text",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "  "}]}`,
			wantErr: "empty question text",
		},
		{
			name: "duplicate answer",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t", "answers": ["red", "red"]}]}`,
			wantErr: "duplicate answer",
		},
		{
			name: "flags without arguments",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t",
					"translatableArguments": [true]}]}`,
			wantErr: "flags without arguments",
		},
		{
			name: "arguments without group size",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t",
					"arguments": ["a"]}]}`,
			wantErr: "group size is 0",
		},
		{
			name: "ragged argument groups",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t",
					"arguments": ["a", "b", "c"], "argumentGroupSize": 2,
					"translatableArguments": [true, false]}]}`,
			wantErr: "do not divide",
		},
		{
			name: "flag count mismatch",
			manifest: `{"modules": [{"name": "Wires", "contributor": "Alice"}],
				"questions": [{"id": "q", "module": "Wires", "text": "t",
					"arguments": ["a", "b"], "argumentGroupSize": 2,
					"translatableArguments": [true]}]}`,
			wantErr: "translatable-argument flags for group size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest), "manifest.json")
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not a *LoadError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not a *LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not wrap os.ErrNotExist: %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(c.Questions))
	}
}
