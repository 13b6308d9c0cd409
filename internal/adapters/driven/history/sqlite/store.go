package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/placescout-cli/internal/adapters/driven/history/sqlite/migrations"
	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
)

// defaultListLimit applies when ListRuns is called with limit <= 0.
const defaultListLimit = 20

// Store is a SQLite-backed run history.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.RunStore = (*Store)(nil)

// NewStore creates a run history store at the specified data directory.
// If dataDir is empty, defaults to ~/.placescout/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".placescout", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordRun stores one completed run.
func (s *Store) RecordRun(ctx context.Context, run *domain.Run) error {
	if run.ID == "" || run.Query == "" {
		return domain.ErrInvalidInput
	}

	outputsJSON, err := json.Marshal(run.Outputs)
	if err != nil {
		return fmt.Errorf("marshalling outputs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, query, format, pages, items, outputs, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Query, string(run.Format), run.Pages, run.Items,
		string(outputsJSON), run.StartedAt.UTC(), run.EndedAt.UTC())

	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, format, pages, items, outputs, started_at, ended_at
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.Run
		var format, outputsJSON string
		var startedAt, endedAt sql.NullTime
		if err := rows.Scan(&run.ID, &run.Query, &format, &run.Pages,
			&run.Items, &outputsJSON, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		run.Format = domain.OutputFormat(format)
		if outputsJSON != "" {
			if err := json.Unmarshal([]byte(outputsJSON), &run.Outputs); err != nil {
				return nil, fmt.Errorf("unmarshaling outputs: %w", err)
			}
		}
		if startedAt.Valid {
			run.StartedAt = startedAt.Time
		}
		if endedAt.Valid {
			run.EndedAt = endedAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_runs.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("marking migration %s applied: %w", name, err)
		}
	}

	return nil
}
