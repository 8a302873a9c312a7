// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Store persists a work corpus in a SQLite database so repeated analyses
// do not re-fetch or re-parse source files.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the corpus database at path, creating the
// schema if it does not exist.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening corpus database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS works (
			id TEXT PRIMARY KEY,
			doi TEXT,
			title TEXT,
			year INTEGER,
			citations INTEGER NOT NULL DEFAULT 0,
			topics TEXT,
			author_ids TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_works_year ON works(year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveWorks upserts works into the store. Records without an identifier
// are skipped rather than fatal. Returns the number saved.
func (s *Store) SaveWorks(ctx context.Context, works []types.Work) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO works (id, doi, title, year, citations, topics, author_ids)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			doi=excluded.doi, title=excluded.title, year=excluded.year,
			citations=excluded.citations, topics=excluded.topics,
			author_ids=excluded.author_ids`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	saved := 0
	for _, w := range works {
		if w.ID == "" {
			continue
		}
		topicsJSON, _ := json.Marshal(w.Topics)
		authorsJSON, _ := json.Marshal(w.AuthorIDs)

		var year any
		if w.Year > 0 {
			year = w.Year
		}
		if _, err := stmt.ExecContext(ctx,
			w.ID, w.DOI, w.Title, year, w.Citations,
			string(topicsJSON), string(authorsJSON),
		); err != nil {
			return 0, fmt.Errorf("inserting work %s: %w", w.ID, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return saved, nil
}

// LoadWorks returns every work in the store, ordered by identifier for a
// deterministic corpus iteration order.
func (s *Store) LoadWorks(ctx context.Context) ([]types.Work, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doi, title, year, citations, topics, author_ids
		 FROM works ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying works: %w", err)
	}
	defer rows.Close()

	var works []types.Work
	for rows.Next() {
		var (
			w           types.Work
			doi, title  sql.NullString
			year        sql.NullInt64
			topicsJSON  sql.NullString
			authorsJSON sql.NullString
		)
		if err := rows.Scan(&w.ID, &doi, &title, &year, &w.Citations, &topicsJSON, &authorsJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		w.DOI = doi.String
		w.Title = title.String
		if year.Valid {
			w.Year = int(year.Int64)
		}
		if topicsJSON.Valid {
			json.Unmarshal([]byte(topicsJSON.String), &w.Topics)
		}
		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &w.AuthorIDs)
		}

		works = append(works, w)
	}

	return works, rows.Err()
}
