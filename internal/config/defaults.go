package config

const (
	defaultCatalogPath     = "assets/catalog.json"
	defaultTranslationsDir = "translations"
	defaultCreditsFile     = "CONTRIBUTORS.md"
	defaultLogDir          = "~/.local/share/souvenirgen/logs"
	defaultHistoryPath     = "~/.local/share/souvenirgen/history.db"
	defaultFilePattern     = "%s.go"
	defaultBeginMarker     = "// souvenirgen:begin"
	defaultEndMarker       = "// souvenirgen:end"
	defaultOrdinalWord     = "first"
	defaultCreditsColumns  = 5
	defaultMajorThreshold  = 5
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

func defaultLanguageCodes() []string {
	return []string{"de", "es", "fr", "ja"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Catalog:         defaultCatalogPath,
			TranslationsDir: defaultTranslationsDir,
			CreditsFile:     defaultCreditsFile,
			LogDir:          defaultLogDir,
		},
		Languages: Languages{
			Codes:       defaultLanguageCodes(),
			FilePattern: defaultFilePattern,
		},
		Generation: Generation{
			BeginMarker: defaultBeginMarker,
			EndMarker:   defaultEndMarker,
			OrdinalWord: defaultOrdinalWord,
		},
		Credits: Credits{
			Columns:        defaultCreditsColumns,
			MajorThreshold: defaultMajorThreshold,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
