package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/config"
)

// SampleCatalogJSON is a small but representative manifest: two modules, a
// plain question, an answer-pool question, and an argument-group question.
const SampleCatalogJSON = `{
  "modules": [
    {"name": "Wire Sequence", "contributor": "Alice"},
    {"name": "Maze", "contributor": "Bob"}
  ],
  "questions": [
    {
      "id": "WireSequenceColor",
      "module": "Wire Sequence",
      "text": "What color was the {1} wire in {0}?",
      "answers": ["Red", "Blue", "Black"],
      "translateAnswers": true
    },
    {
      "id": "WireSequenceCount",
      "module": "Wire Sequence",
      "text": "How many wires were cut in {0}?"
    },
    {
      "id": "MazeMarking",
      "module": "Maze",
      "useArticle": true,
      "text": "Which wall was marked in {0}? The marking was {1}.",
      "arguments": ["in the corner", "by the exit"],
      "argumentGroupSize": 1,
      "translatableArguments": [true]
    }
  ]
}`

// WriteCatalog stores manifest JSON at the config's catalog path.
func WriteCatalog(t testing.TB, cfg *config.Config, manifest string) {
	t.Helper()
	WriteFile(t, cfg.Paths.Catalog, []byte(manifest))
}

// WriteArtifact stores a translation artifact for the given language code.
func WriteArtifact(t testing.TB, cfg *config.Config, code, content string) string {
	t.Helper()
	path := cfg.ArtifactPath(code)
	WriteFile(t, path, []byte(content))
	return path
}

// WriteFile creates path (and parent directories) with the given content.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
