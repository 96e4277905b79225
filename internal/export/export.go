package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/fileutil"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/transgen"
)

// Exporter writes message catalogs into a fixed output directory.
type Exporter struct {
	dir string
}

// Result describes one language's written catalog.
type Result struct {
	Language string
	Path     string
	Messages int
}

// New returns an exporter rooted at dir. The directory is created on the
// first write.
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// WriteMessages renders the merged records for one language as
// active.<code>.toml and validates the file by loading it back through a
// go-i18n bundle. Records still carrying the English fallback are omitted.
func (e *Exporter) WriteMessages(code string, records []transgen.Record) (Result, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return Result{}, fmt.Errorf("parse language code %q: %w", code, err)
	}

	messages := make(map[string]string, len(records))
	for _, record := range records {
		if !record.TextTranslated {
			continue
		}
		messages[record.ID] = record.Text
	}

	body, err := toml.Marshal(messages)
	if err != nil {
		return Result{}, fmt.Errorf("marshal messages: %w", err)
	}

	header := fmt.Sprintf("# %s (%s) souvenir question texts.\n# Generated file, edit the translation tables instead.\n\n",
		display.English.Tags().Name(tag), code)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("active.%s.toml", code))
	if err := fileutil.WriteFileAtomic(path, append([]byte(header), body...), 0o644); err != nil {
		return Result{}, fmt.Errorf("write message catalog: %w", err)
	}

	if err := validateCatalog(tag, path, len(messages)); err != nil {
		return Result{}, err
	}

	return Result{Language: code, Path: path, Messages: len(messages)}, nil
}

// validateCatalog proves the written file round-trips through go-i18n.
func validateCatalog(tag language.Tag, path string, want int) error {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	file, err := bundle.LoadMessageFile(path)
	if err != nil {
		return fmt.Errorf("reload message catalog %s: %w", path, err)
	}
	if got := len(file.Messages); got != want {
		return fmt.Errorf("message catalog %s: bundle sees %d messages, wrote %d", path, got, want)
	}
	return nil
}
