package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// SQLiteStore keeps every generated cover letter in a local SQLite database
// so past letters can be listed and re-read.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the letters table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS letters (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		model      TEXT NOT NULL,
		job_brief  TEXT NOT NULL,
		letter     TEXT NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating letters table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save records a generated letter and returns its ID. A zero CreatedAt is
// filled with the current time.
func (s *SQLiteStore) Save(rec model.LetterRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		"INSERT INTO letters (created_at, model, job_brief, letter) VALUES (?, ?, ?, ?)",
		rec.CreatedAt, rec.Model, rec.JobBrief, rec.Letter,
	)
	if err != nil {
		return 0, fmt.Errorf("saving letter: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("saving letter: %w", err)
	}
	return id, nil
}

// List returns all saved letters, newest first.
func (s *SQLiteStore) List() ([]model.LetterRecord, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, model, job_brief, letter FROM letters ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing letters: %w", err)
	}
	defer rows.Close()

	var recs []model.LetterRecord
	for rows.Next() {
		var rec model.LetterRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Model, &rec.JobBrief, &rec.Letter); err != nil {
			return nil, fmt.Errorf("scanning letter row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing letters: %w", err)
	}
	return recs, nil
}

// Get returns the letter with the given ID.
func (s *SQLiteStore) Get(id int64) (model.LetterRecord, error) {
	var rec model.LetterRecord
	err := s.db.QueryRow(
		"SELECT id, created_at, model, job_brief, letter FROM letters WHERE id = ?", id,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.Model, &rec.JobBrief, &rec.Letter)
	if err == sql.ErrNoRows {
		return model.LetterRecord{}, fmt.Errorf("letter %d not found", id)
	}
	if err != nil {
		return model.LetterRecord{}, fmt.Errorf("getting letter %d: %w", id, err)
	}
	return rec, nil
}

// Prune deletes letters older than the given duration and returns how many
// were removed.
func (s *SQLiteStore) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.db.Exec("DELETE FROM letters WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning letters older than %v: %w", olderThan, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning letters: %w", err)
	}
	return n, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
