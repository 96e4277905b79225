package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Outcome classifies what happened to a single artifact during a run.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Run is one recorded regeneration.
type Run struct {
	ID             int64
	RunID          string
	StartedAt      time.Time
	FinishedAt     time.Time
	Questions      int
	CreditsWritten bool
	ExportsWritten int
}

// Duration reports how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Kind distinguishes the artifact families a run can produce.
type Kind string

const (
	KindTranslation Kind = "translation"
	KindExport      Kind = "export"
)

// FileOutcome is the per-artifact record attached to a run.
type FileOutcome struct {
	ID       int64
	RunID    int64
	Kind     Kind
	Language string
	Path     string
	Status   Outcome
	Detail   string
	Entries  int
}

// RecordRun inserts a run and its file outcomes in one transaction and
// returns the new run's row id.
func (s *Store) RecordRun(ctx context.Context, run Run, files []FileOutcome) (int64, error) {
	ctx = ensureContext(ctx)

	var runID int64
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin run tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO runs (run_id, started_at, finished_at, questions, credits_written, exports_written)
             VALUES (?, ?, ?, ?, ?, ?)`,
			run.RunID,
			run.StartedAt.UTC().Format(time.RFC3339Nano),
			run.FinishedAt.UTC().Format(time.RFC3339Nano),
			run.Questions,
			boolToInt(run.CreditsWritten),
			run.ExportsWritten,
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		runID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}

		for _, file := range files {
			kind := file.Kind
			if kind == "" {
				kind = KindTranslation
			}
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO run_files (run_id, kind, language, path, status, detail, entries)
                 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				runID,
				string(kind),
				file.Language,
				file.Path,
				string(file.Status),
				nullableString(file.Detail),
				file.Entries,
			); err != nil {
				return fmt.Errorf("insert run file: %w", err)
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}
	return runID, nil
}

// RecentRuns returns the newest runs first, at most limit rows.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, started_at, finished_at, questions, credits_written, exports_written
         FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindRun fetches a run by its uuid identifier.
func (s *Store) FindRun(ctx context.Context, runID string) (*Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, run_id, started_at, finished_at, questions, credits_written, exports_written
         FROM runs WHERE run_id = ?`,
		runID,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	return &run, nil
}

// RunFiles returns the file outcomes recorded for a run, in insertion order.
func (s *Store) RunFiles(ctx context.Context, runID int64) ([]FileOutcome, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, kind, language, path, status, detail, entries
         FROM run_files WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var files []FileOutcome
	for rows.Next() {
		var (
			file   FileOutcome
			kind   string
			status string
			detail sql.NullString
		)
		if err := rows.Scan(&file.ID, &file.RunID, &kind, &file.Language, &file.Path, &status, &detail, &file.Entries); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		file.Kind = Kind(kind)
		file.Status = Outcome(status)
		file.Detail = detail.String
		files = append(files, file)
	}
	return files, rows.Err()
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run         Run
		startedRaw  string
		finishedRaw string
		credits     int64
	)
	if err := scanner.Scan(&run.ID, &run.RunID, &startedRaw, &finishedRaw, &run.Questions, &credits, &run.ExportsWritten); err != nil {
		return Run{}, err
	}
	run.StartedAt = parseTime(startedRaw)
	run.FinishedAt = parseTime(finishedRaw)
	run.CreditsWritten = credits != 0
	return run, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
