package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weather-app/internal/weather"
)

// FileStore keeps the whole history as one JSON array on disk. Appends are
// serialised by a mutex and committed by renaming a fully written temp file,
// so a crash mid-write never leaves a truncated history behind.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

const historyFileMode os.FileMode = 0o644

// NewFileStore creates the parent directory of path if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &FileStore{
		path: path,
		now:  time.Now,
	}, nil
}

// Path returns the history file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Append(ctx context.Context, location string, data []weather.PresentationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	entries = append(entries, NewEntry(location, data, s.now()))

	b, err := Encode(entries)
	if err != nil {
		return err
	}
	return s.write(b)
}

func (s *FileStore) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() ([]Entry, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return Decode(b)
}

func (s *FileStore) write(b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	// CreateTemp opens 0600; the history file is meant to be world-readable
	if err := tmp.Chmod(historyFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set history file mode: %w", err)
	}

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to flush history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp history file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
