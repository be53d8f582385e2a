package data

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	position       INTEGER NOT NULL,
	id             INTEGER NOT NULL,
	title          VARCHAR NOT NULL,
	status         VARCHAR NOT NULL,
	chapters_read  INTEGER NOT NULL,
	total_chapters INTEGER NOT NULL,
	rating         INTEGER NOT NULL,
	genre          VARCHAR NOT NULL,
	cover_color    VARCHAR NOT NULL
)`

const selectEntries = `SELECT id, title, status, chapters_read, total_chapters, rating, genre, cover_color FROM entries`

// InitDuckDB opens the database at path and creates the schema.
// An empty path opens a private in-memory database.
func InitDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository is the collection store. It is seeded once at start-up and read afterwards.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBRepository returns the session repository, seeded with DefaultEntries on first use.
func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		db, err := InitDuckDB("")
		if err != nil {
			log.Fatal(err)
		}
		repo := &Repository{db: db}
		if err := repo.Seed(DefaultEntries()); err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Seed replaces the collection with entries, keeping their order.
func (r *Repository) Seed(entries []Entry) error {
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for i, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO entries (position, id, title, status, chapters_read, total_chapters, rating, genre, cover_color)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.Title, string(e.Status), e.ChaptersRead, e.TotalChapters, e.Rating, e.Genre, e.CoverColor,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Debug("library seeded", slog.Int("entries", len(entries)))
	return nil
}

func (r *Repository) ListEntries() ([]Entry, error) {
	rows, err := r.db.Query(selectEntries + ` ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetEntry returns nil without an error when no entry has the id.
func (r *Repository) GetEntry(id int) (*Entry, error) {
	row := r.db.QueryRow(selectEntries+` WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

func (r *Repository) Close() error {
	if r.db == duckDB {
		duckDB = nil
	}
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e      Entry
		status string
	)
	err := s.Scan(&e.ID, &e.Title, &status, &e.ChaptersRead, &e.TotalChapters, &e.Rating, &e.Genre, &e.CoverColor)
	if err != nil {
		return Entry{}, err
	}
	if e.Status, err = ParseStatus(status); err != nil {
		return Entry{}, err
	}
	return e, nil
}
