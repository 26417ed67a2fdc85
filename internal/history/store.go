package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases must be deleted after a bump.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by an incompatible version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Record captures one plugin run against one file.
type Record struct {
	ID              string
	Path            string
	Plugin          string
	NeedsProcessing bool
	Args            []string
	CreatedAt       time.Time
}

// Store persists run records in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Add inserts a run record, assigning its ID and timestamp, and returns the
// stored record.
func (s *Store) Add(ctx context.Context, record Record) (Record, error) {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	argsJSON, err := json.Marshal(record.Args)
	if err != nil {
		return Record{}, fmt.Errorf("marshal args: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, path, plugin, needs_processing, args_json, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Path,
		record.Plugin,
		boolToInt(record.NeedsProcessing),
		string(argsJSON),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert run: %w", err)
	}
	return record, nil
}

// List returns the most recent records, newest first. A limit of zero or
// less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := "SELECT id, path, plugin, needs_processing, args_json, created_at FROM runs ORDER BY rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// ForPath returns the records for a single file, newest first.
func (s *Store) ForPath(ctx context.Context, path string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, path, plugin, needs_processing, args_json, created_at FROM runs WHERE path = ? ORDER BY rowid DESC",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs for path: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		record   Record
		needs    int
		argsJSON string
		created  string
	)
	if err := rows.Scan(&record.ID, &record.Path, &record.Plugin, &needs, &argsJSON, &created); err != nil {
		return Record{}, fmt.Errorf("scan run: %w", err)
	}
	record.NeedsProcessing = needs != 0
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &record.Args); err != nil {
			return Record{}, fmt.Errorf("parse args: %w", err)
		}
	}
	parsed, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	record.CreatedAt = parsed
	return record, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
