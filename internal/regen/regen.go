package regen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/catalog"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/config"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/contributors"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/credits"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/export"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/fileutil"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/genregion"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/history"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/logging"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/overrides"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/transgen"
)

// Options select which outputs a run produces and for which languages.
type Options struct {
	// Languages restricts the run to a subset of the configured codes.
	// Empty means all configured languages.
	Languages []string

	Translations bool
	Credits      bool
	Export       bool
}

// FileResult reports the outcome of one produced file.
type FileResult struct {
	Language string
	Path     string
	Status   history.Outcome
	Detail   string
	Entries  int
}

// CreditsResult reports the outcome of the credits document.
type CreditsResult struct {
	Path   string
	Status history.Outcome
	Detail string
}

// Summary collects everything a run did.
type Summary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Questions  int

	Translations []FileResult
	Credits      *CreditsResult // nil unless requested
	Exports      []FileResult
}

// Counts tallies outcomes across all outputs of the run.
func (s *Summary) Counts() (ok, skipped, failed int) {
	tally := func(status history.Outcome) {
		switch status {
		case history.OutcomeOK:
			ok++
		case history.OutcomeSkipped:
			skipped++
		case history.OutcomeFailed:
			failed++
		}
	}
	for _, file := range s.Translations {
		tally(file.Status)
	}
	if s.Credits != nil {
		tally(s.Credits.Status)
	}
	for _, file := range s.Exports {
		tally(file.Status)
	}
	return ok, skipped, failed
}

// Failed reports whether the run produced nothing: at least one output
// failed and none succeeded. Skips alone do not count as failure.
func (s *Summary) Failed() bool {
	ok, _, failed := s.Counts()
	return failed > 0 && ok == 0
}

// Runner sequences regeneration runs. A nil history store disables run
// recording.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *history.Store

	lockPath string
	lock     *flock.Flock
}

// New constructs a runner with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("runner requires config")
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "souvenirgen.lock")
	return &Runner{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "regen"),
		store:    store,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// LockPath returns the lock file guarding concurrent runs.
func (r *Runner) LockPath() string {
	return r.lockPath
}

// Run executes one regeneration. It returns an error only for conditions
// that abort the whole run: a held lock, an unloadable catalog, or an
// unknown requested language. Per-output problems land in the Summary.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	held, err := r.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !held {
		return nil, fmt.Errorf("another regeneration is already running (lock %s)", r.lockPath)
	}
	defer func() {
		_ = r.lock.Unlock()
	}()

	codes, err := r.selectLanguages(opts.Languages)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: uuid.NewString(), StartedAt: time.Now().UTC()}
	logger := r.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	cat, err := catalog.Load(r.cfg.Paths.Catalog)
	if err != nil {
		return nil, err
	}
	summary.Questions = cat.QuestionCount()
	logger.Info("catalog loaded",
		logging.String(logging.FieldEventType, "catalog_loaded"),
		logging.Int("modules", len(cat.Modules)),
		logging.Int("questions", summary.Questions))

	if opts.Translations {
		gen := transgen.New(r.cfg.Markers(), r.cfg.Generation.OrdinalWord)
		for _, code := range codes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			summary.Translations = append(summary.Translations, r.regenerateArtifact(logger, gen, cat, code))
		}
	}

	if opts.Credits {
		summary.Credits = r.writeCredits(logger, cat)
	}

	if opts.Export {
		exporter := export.New(r.cfg.Paths.ExportDir)
		for _, code := range codes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			summary.Exports = append(summary.Exports, r.exportMessages(logger, exporter, cat, code))
		}
	}

	summary.FinishedAt = time.Now().UTC()
	r.recordHistory(ctx, logger, summary)

	ok, skipped, failed := summary.Counts()
	logger.Info("run complete",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("ok", ok),
		logging.Int("skipped", skipped),
		logging.Int("failed", failed),
		logging.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)))

	return summary, nil
}

// selectLanguages resolves the requested subset against the configured
// codes, preserving configured order and rejecting unknown codes.
func (r *Runner) selectLanguages(requested []string) ([]string, error) {
	configured := r.cfg.Languages.Codes
	if len(requested) == 0 {
		return configured, nil
	}

	want := make(map[string]bool, len(requested))
	for _, raw := range requested {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		found := false
		for _, known := range configured {
			if known == code {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("language %q is not configured (configured: %s)", raw, strings.Join(configured, ", "))
		}
		want[code] = true
	}

	selected := make([]string, 0, len(want))
	for _, code := range configured {
		if want[code] {
			selected = append(selected, code)
		}
	}
	return selected, nil
}

func (r *Runner) regenerateArtifact(logger *slog.Logger, gen *transgen.Generator, cat *catalog.Catalog, code string) FileResult {
	result := FileResult{Language: code, Path: r.cfg.ArtifactPath(code)}

	existing, err := os.ReadFile(result.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r.skipArtifact(logger, result, "artifact file missing",
				"create the file with the generated-region markers first")
		}
		return r.failFile(logger, result, "artifact_failed", err)
	}

	prior, err := overrides.Parse(filepath.Base(result.Path), existing)
	if err != nil {
		return r.skipArtifact(logger, result, fmt.Sprintf("prior artifact unreadable: %v", err),
			"fix the syntax error, the file was not modified")
	}

	updated, err := gen.Generate(cat, prior, string(existing))
	if err != nil {
		if genregion.IsNotFound(err) {
			return r.skipArtifact(logger, result, err.Error(),
				"add the begin and end markers to the artifact")
		}
		return r.failFile(logger, result, "artifact_failed", err)
	}

	if err := fileutil.WriteFileAtomic(result.Path, []byte(updated), 0o644); err != nil {
		return r.failFile(logger, result, "artifact_failed", err)
	}

	result.Status = history.OutcomeOK
	result.Entries = cat.QuestionCount()
	logger.Info("artifact written",
		logging.String(logging.FieldEventType, "artifact_written"),
		logging.String(logging.FieldLanguage, code),
		logging.String("path", result.Path),
		logging.Int("entries", result.Entries))
	return result
}

func (r *Runner) skipArtifact(logger *slog.Logger, result FileResult, detail, hint string) FileResult {
	result.Status = history.OutcomeSkipped
	result.Detail = detail
	logger.Warn("language skipped", logging.Args(
		logging.String(logging.FieldEventType, "language_skipped"),
		logging.String(logging.FieldLanguage, result.Language),
		logging.String("detail", detail),
		logging.String(logging.FieldErrorHint, hint),
	)...)
	return result
}

func (r *Runner) failFile(logger *slog.Logger, result FileResult, eventType string, err error) FileResult {
	result.Status = history.OutcomeFailed
	result.Detail = err.Error()
	logger.Error("output failed", logging.Args(
		logging.String(logging.FieldEventType, eventType),
		logging.String(logging.FieldLanguage, result.Language),
		logging.String("path", result.Path),
		logging.Error(err),
	)...)
	return result
}

func (r *Runner) writeCredits(logger *slog.Logger, cat *catalog.Catalog) *CreditsResult {
	result := &CreditsResult{Path: r.cfg.Paths.CreditsFile}

	aliases, err := contributors.LoadAliases(r.cfg.Paths.AliasesFile)
	if err != nil {
		result.Status = history.OutcomeFailed
		result.Detail = err.Error()
		logger.Error("credits failed",
			logging.String(logging.FieldEventType, "credits_failed"),
			logging.Error(err))
		return result
	}

	groups := contributors.Collect(cat.Modules, aliases)
	doc := credits.Generate(groups, credits.Options{
		Columns:        r.cfg.Credits.Columns,
		MajorThreshold: r.cfg.Credits.MajorThreshold,
	})

	if err := fileutil.WriteFileAtomic(result.Path, []byte(doc), 0o644); err != nil {
		result.Status = history.OutcomeFailed
		result.Detail = err.Error()
		logger.Error("credits failed",
			logging.String(logging.FieldEventType, "credits_failed"),
			logging.Error(err))
		return result
	}

	result.Status = history.OutcomeOK
	logger.Info("credits written",
		logging.String(logging.FieldEventType, "credits_written"),
		logging.String("path", result.Path),
		logging.Int("contributors", len(groups)))
	return result
}

// exportMessages merges the current artifact state for one language and
// writes its go-i18n catalog. The artifact on disk is the source of truth,
// so a language skipped during generation is skipped here too.
func (r *Runner) exportMessages(logger *slog.Logger, exporter *export.Exporter, cat *catalog.Catalog, code string) FileResult {
	artifactPath := r.cfg.ArtifactPath(code)
	result := FileResult{Language: code}

	existing, err := os.ReadFile(artifactPath)
	if err != nil {
		result.Status = history.OutcomeSkipped
		if errors.Is(err, fs.ErrNotExist) {
			result.Detail = "artifact file missing"
		} else {
			result.Detail = err.Error()
		}
		logger.Warn("export skipped",
			logging.String(logging.FieldEventType, "export_skipped"),
			logging.String(logging.FieldLanguage, code),
			logging.String("detail", result.Detail))
		return result
	}

	prior, err := overrides.Parse(filepath.Base(artifactPath), existing)
	if err != nil {
		result.Status = history.OutcomeSkipped
		result.Detail = fmt.Sprintf("prior artifact unreadable: %v", err)
		logger.Warn("export skipped",
			logging.String(logging.FieldEventType, "export_skipped"),
			logging.String(logging.FieldLanguage, code),
			logging.String("detail", result.Detail))
		return result
	}

	exported, err := exporter.WriteMessages(code, transgen.Merge(cat, prior))
	if err != nil {
		return r.failFile(logger, result, "export_failed", err)
	}

	result.Status = history.OutcomeOK
	result.Path = exported.Path
	result.Entries = exported.Messages
	logger.Info("export written",
		logging.String(logging.FieldEventType, "export_written"),
		logging.String(logging.FieldLanguage, code),
		logging.String("path", exported.Path),
		logging.Int("messages", exported.Messages))
	return result
}

// recordHistory persists the run. Failures degrade to a warning.
func (r *Runner) recordHistory(ctx context.Context, logger *slog.Logger, summary *Summary) {
	if r.store == nil || !r.cfg.History.Enabled {
		return
	}

	run := history.Run{
		RunID:      summary.RunID,
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
		Questions:  summary.Questions,
	}
	if summary.Credits != nil && summary.Credits.Status == history.OutcomeOK {
		run.CreditsWritten = true
	}

	files := make([]history.FileOutcome, 0, len(summary.Translations)+len(summary.Exports))
	for _, file := range summary.Translations {
		files = append(files, history.FileOutcome{
			Kind:     history.KindTranslation,
			Language: file.Language,
			Path:     file.Path,
			Status:   file.Status,
			Detail:   file.Detail,
			Entries:  file.Entries,
		})
	}
	for _, file := range summary.Exports {
		if file.Status == history.OutcomeOK {
			run.ExportsWritten++
		}
		files = append(files, history.FileOutcome{
			Kind:     history.KindExport,
			Language: file.Language,
			Path:     file.Path,
			Status:   file.Status,
			Detail:   file.Detail,
			Entries:  file.Entries,
		})
	}

	if _, err := r.store.RecordRun(ctx, run, files); err != nil {
		logger.Warn("history record failed", logging.Args(
			logging.String(logging.FieldEventType, "history_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "delete the history database to reset it"),
		)...)
	}
}
