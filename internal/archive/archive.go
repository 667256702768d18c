// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists searches and their normalized records in a local
// SQLite database. Archiving is an explicit export the user opts into; the
// search pipeline itself never writes here.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/patent-lens/pkg/types"
)

const dbFile = "archive.db"

const defaultDir = "archive"

// Store manages the search archive SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the archive database at dir/archive.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id TEXT PRIMARY KEY,
			keywords TEXT NOT NULL,
			per_page INTEGER,
			total_available INTEGER,
			record_count INTEGER,
			search_error TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS patents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			search_id TEXT NOT NULL REFERENCES searches(id),
			position INTEGER NOT NULL,
			number TEXT,
			date TEXT,
			title TEXT,
			country TEXT,
			type TEXT,
			abstract TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_patents_search_id ON patents(search_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Search describes one search to archive.
type Search struct {
	Keywords       []string
	PerPage        int
	TotalAvailable int
	SearchError    string
	Records        []types.PatentRecord
}

// Entry is an archived search as listed or fetched back.
type Entry struct {
	ID             string    `json:"id" yaml:"id"`
	Keywords       []string  `json:"keywords" yaml:"keywords"`
	PerPage        int       `json:"per_page" yaml:"per_page"`
	TotalAvailable int       `json:"total_available" yaml:"total_available"`
	RecordCount    int       `json:"record_count" yaml:"record_count"`
	SearchError    string    `json:"search_error,omitempty" yaml:"search_error,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// Save records a search and its records, returning the generated search ID.
func (s *Store) Save(ctx context.Context, search Search) (string, error) {
	id := uuid.New().String()
	keywordsJSON, _ := json.Marshal(search.Keywords)
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO searches (id, keywords, per_page, total_available, record_count, search_error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, string(keywordsJSON), search.PerPage, search.TotalAvailable,
		len(search.Records), search.SearchError, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("inserting search: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO patents (search_id, position, number, date, title, country, type, abstract)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range search.Records {
		_, err := stmt.ExecContext(ctx, id, i, r.Number, r.Date, r.Title, r.Country, r.Type, r.Abstract)
		if err != nil {
			return "", fmt.Errorf("inserting patent %s: %w", r.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return id, nil
}

// List returns all archived searches, newest first. Insertion order stands
// in for the timestamp so same-second saves stay stable.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, keywords, per_page, total_available, record_count, search_error, created_at
		 FROM searches ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one archived search and its records in stored order.
func (s *Store) Get(ctx context.Context, id string) (Entry, []types.PatentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, keywords, per_page, total_available, record_count, search_error, created_at
		 FROM searches WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, nil, fmt.Errorf("search %s not found", id)
		}
		return Entry{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT number, date, title, country, type, abstract
		 FROM patents WHERE search_id = ? ORDER BY position`, id)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("querying patents: %w", err)
	}
	defer rows.Close()

	var records []types.PatentRecord
	for rows.Next() {
		var r types.PatentRecord
		if err := rows.Scan(&r.Number, &r.Date, &r.Title, &r.Country, &r.Type, &r.Abstract); err != nil {
			return Entry{}, nil, fmt.Errorf("scanning patent row: %w", err)
		}
		records = append(records, r)
	}
	return entry, records, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e            Entry
		keywordsJSON string
		createdAt    string
	)
	if err := row.Scan(&e.ID, &keywordsJSON, &e.PerPage, &e.TotalAvailable,
		&e.RecordCount, &e.SearchError, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning search row: %w", err)
	}

	json.Unmarshal([]byte(keywordsJSON), &e.Keywords)
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		e.CreatedAt = t
	}
	return e, nil
}
