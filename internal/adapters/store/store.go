// Package store persists run outcomes to a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var (
	_ ports.ResultStore       = (*Store)(nil)
	_ ports.ResultStoreOpener = Opener{}
)

// Opener implements ports.ResultStoreOpener.
type Opener struct{}

// Open opens the database at path, creating parent directories and applying
// migrations as needed.
func (Opener) Open(ctx context.Context, path string) (ports.ResultStore, error) {
	return Open(ctx, path)
}

// Store implements ports.ResultStore on database/sql.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, openFailed(err, path)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, openFailed(err, path)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, openFailed(err, path)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, openFailed(err, path)
	}
	return &Store{db: db, now: time.Now}, nil
}

// DB exposes the underlying handle for read-only tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveRun writes the run row, its builds and every record in one transaction.
func (s *Store) SaveRun(ctx context.Context, run ports.RunInfo, report *domain.Report) error {
	if err := s.saveRun(ctx, run, report); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "run_id", run.ID))
	}
	return nil
}

func (s *Store) saveRun(ctx context.Context, run ports.RunInfo, report *domain.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	task := report.Task()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, task, kind, version, started_at, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, task.String(), task.Kind().String(), run.Version,
		report.Started().UTC().Format(time.RFC3339Nano), s.now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return zerr.Wrap(err, "failed to insert run")
	}

	for _, b := range report.Builds() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO builds(run_id, implementation, status, command, exit_code, duration_us) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, b.Implementation, string(b.Status), b.Command, b.ExitCode, b.Duration.Microseconds(),
		); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert build"), "implementation", b.Implementation)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO outcomes(
		run_id, implementation, task, game, source, digest, status,
		duration_us, wall_clock_us, exit_code, input_bytes, result, detail
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return zerr.Wrap(err, "failed to prepare outcome insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range report.Records() {
		o := rec.Outcome
		if _, err := stmt.ExecContext(ctx,
			run.ID, rec.Key.Implementation, rec.Key.Task.String(), string(rec.Key.Game), rec.Source, rec.Digest,
			string(o.Status), o.Duration.Microseconds(), o.WallClock.Microseconds(), o.ExitCode, o.InputBytes,
			o.Result, o.Detail,
		); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert outcome"), "source", rec.Source)
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, "failed to commit run")
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func openFailed(err error, path string) error {
	return errors.Join(domain.ErrStoreOpenFailed, zerr.With(err, "path", path))
}
