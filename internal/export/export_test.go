package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/export"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/transgen"
)

func sampleRecords() []transgen.Record {
	return []transgen.Record{
		{ID: "WireSequenceColor", Module: "Wire Sequence", Text: "Wie war die Farbe des Drahts?", TextTranslated: true},
		{ID: "WireSequenceCount", Module: "Wire Sequence", Text: "How many wires were cut?"},
		{ID: "MazeMarking", Module: "Maze", Text: "Welche Wand war markiert?", TextTranslated: true},
	}
}

func TestWriteMessagesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	exporter := export.New(dir)

	result, err := exporter.WriteMessages("de", sampleRecords())
	if err != nil {
		t.Fatalf("WriteMessages failed: %v", err)
	}
	if result.Language != "de" {
		t.Fatalf("Language = %q, want de", result.Language)
	}
	if want := filepath.Join(dir, "active.de.toml"); result.Path != want {
		t.Fatalf("Path = %q, want %q", result.Path, want)
	}
	if result.Messages != 2 {
		t.Fatalf("Messages = %d, want 2", result.Messages)
	}

	bundle := i18n.NewBundle(language.German)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.LoadMessageFile(result.Path); err != nil {
		t.Fatalf("bundle rejected catalog: %v", err)
	}

	localizer := i18n.NewLocalizer(bundle, "de")
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "WireSequenceColor"})
	if err != nil {
		t.Fatalf("localize failed: %v", err)
	}
	if msg != "Wie war die Farbe des Drahts?" {
		t.Fatalf("localized text = %q", msg)
	}
}

func TestWriteMessagesOmitsUntranslated(t *testing.T) {
	dir := t.TempDir()
	result, err := export.New(dir).WriteMessages("de", sampleRecords())
	if err != nil {
		t.Fatalf("WriteMessages failed: %v", err)
	}

	content, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if strings.Contains(string(content), "WireSequenceCount") {
		t.Fatalf("untranslated record leaked into catalog:\n%s", content)
	}
}

func TestWriteMessagesHeaderNamesLanguage(t *testing.T) {
	dir := t.TempDir()
	result, err := export.New(dir).WriteMessages("ja", []transgen.Record{
		{ID: "MazeMarking", Text: "どの壁に印が付いていましたか？", TextTranslated: true},
	})
	if err != nil {
		t.Fatalf("WriteMessages failed: %v", err)
	}

	content, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if !strings.HasPrefix(string(content), "# Japanese (ja)") {
		t.Fatalf("unexpected header:\n%s", content)
	}
}

func TestWriteMessagesCreatesExportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "messages")
	if _, err := export.New(dir).WriteMessages("fr", sampleRecords()); err != nil {
		t.Fatalf("WriteMessages failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "active.fr.toml")); err != nil {
		t.Fatalf("expected catalog in created dir: %v", err)
	}
}

func TestWriteMessagesRejectsMalformedCode(t *testing.T) {
	if _, err := export.New(t.TempDir()).WriteMessages("!!", sampleRecords()); err == nil {
		t.Fatal("expected error for malformed language code")
	}
}

func TestWriteMessagesEmptyRecords(t *testing.T) {
	result, err := export.New(t.TempDir()).WriteMessages("es", nil)
	if err != nil {
		t.Fatalf("WriteMessages failed: %v", err)
	}
	if result.Messages != 0 {
		t.Fatalf("Messages = %d, want 0", result.Messages)
	}
}
