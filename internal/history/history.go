package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"weather-app/internal/weather"
)

// TimestampLayout is the layout of Entry.Timestamp, always UTC.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// Entry is one successful weather query.
type Entry struct {
	ID        string                       `json:"id"`
	Timestamp string                       `json:"timestamp"`
	Location  string                       `json:"location"`
	Data      []weather.PresentationRecord `json:"data"`
}

// Store persists entries in append order.
type Store interface {
	Append(ctx context.Context, location string, data []weather.PresentationRecord) error
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

// NewEntry stamps a query result with an id and the UTC time.
func NewEntry(location string, data []weather.PresentationRecord, now time.Time) Entry {
	if data == nil {
		data = []weather.PresentationRecord{}
	}
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: now.UTC().Format(TimestampLayout),
		Location:  location,
		Data:      data,
	}
}

// Encode renders entries in the on-disk history format: a JSON array
// indented with four spaces.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}
	return b, nil
}

// Decode parses the on-disk history format. Empty input is an empty history.
func Decode(b []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Open returns the store for the configured backend. The name is case-insensitive.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "file":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}
