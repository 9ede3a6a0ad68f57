package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"weather-app/internal/weather"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	timestamp TEXT NOT NULL,
	location  TEXT NOT NULL,
	data      TEXT NOT NULL
)`

// SQLiteStore keeps history rows in a SQLite database, one row per entry.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// A single connection serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &SQLiteStore{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, location string, data []weather.PresentationRecord) error {
	e := NewEntry(location, data, s.now())

	b, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode history data: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO history(id, timestamp, location, data) VALUES(?, ?, ?, ?)`,
		e.ID, e.Timestamp, e.Location, string(b),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, timestamp, location, data FROM history ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e    Entry
			data string
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Location, &data); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &e.Data); err != nil {
			return nil, fmt.Errorf("failed to decode history data for %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
