package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (evaluations table)
const currentSchemaVersion = 1

// Store provides durable storage for the evaluation history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Evaluation is one recorded symbol computation.
type Evaluation struct {
	Seq       int64    `json:"seq"`
	ID        string   `json:"id"`
	Kind      string   `json:"kind"` // "3j" or "6j"
	Inputs    []string `json:"inputs"`
	Value     string   `json:"value"`
	CreatedAt string   `json:"created_at"`
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordEvaluation appends one computed symbol to the history and returns
// its assigned id (a uuid v7, so ids themselves sort by creation time).
func (s *Store) RecordEvaluation(ctx context.Context, kind string, inputs []string, value string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, kind, inputs, value) VALUES (?, ?, ?, ?)`,
		id, kind, strings.Join(inputs, " "), value,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluations returns the most recent evaluations, newest first.
// A limit of zero or less returns all of them.
func (s *Store) ListEvaluations(ctx context.Context, limit int) ([]Evaluation, error) {
	query := `SELECT seq, id, kind, inputs, value, created_at FROM evaluations ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		var inputs string
		if err := rows.Scan(&e.Seq, &e.ID, &e.Kind, &inputs, &e.Value, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		e.Inputs = strings.Fields(inputs)
		evals = append(evals, e)
	}
	return evals, rows.Err()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and stamps the schema
// version. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
