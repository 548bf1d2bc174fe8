package history

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the history list as a whole.
type Store interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
	Close() error
}

// MemStore keeps history in memory only.
type MemStore struct {
	mu    sync.Mutex
	items []Item
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items), nil
}

func (s *MemStore) Save(ctx context.Context, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
	return nil
}

func (s *MemStore) Close() error { return nil }

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY,
	input_text TEXT    NOT NULL,
	timestamp  INTEGER NOT NULL,
	hash       TEXT    NOT NULL,
	position   INTEGER NOT NULL
)`

// SQLiteStore keeps history in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the history database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the stored items, most recent first.
func (s *SQLiteStore) Load(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, input_text, timestamp, hash FROM history ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var ms int64
		if err := rows.Scan(&it.ID, &it.InputText, &ms, &it.Hash); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		it.Timestamp = time.UnixMilli(ms)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return items, nil
}

// Save replaces the stored list with items.
func (s *SQLiteStore) Save(ctx context.Context, items []Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO history (id, input_text, timestamp, hash, position) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, it.ID, it.InputText, it.Timestamp.UnixMilli(), it.Hash, i); err != nil {
			return fmt.Errorf("inserting history item %d: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
