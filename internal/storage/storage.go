// Package storage persists uploaded files on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileStorage writes uploaded files and returns the name they were stored
// under.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalStorage stores files in a single directory on local disk. Stored
// names are prefixed with a millisecond timestamp so uploads with the same
// client filename never collide.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the directory if needed and returns a store
// rooted there.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes r to disk under a timestamped variant of name.
func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name))

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return stored, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}
