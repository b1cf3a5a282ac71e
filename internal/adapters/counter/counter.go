// Package counter keeps the running total of rendered cards on disk. The
// file holds a single decimal integer and is rewritten atomically through a
// temp-file rename, so a crash never leaves a torn value.
package counter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store is the render-counter contract consumed by the application layer.
type Store interface {
	// Increment adds one and returns the new value.
	Increment(ctx context.Context) (int64, error)

	// Value returns the current value without modifying it.
	Value(ctx context.Context) (int64, error)
}

// FileStore implements Store on a single on-disk file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	value int64
}

// NewFileStore opens or creates the counter file at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fresh store; first Increment creates the file.
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	default:
		v, perr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: %q", ErrCorrupt, strings.TrimSpace(string(data)))
		}
		s.value = v
	}
	return s, nil
}

// Increment implements Store.
func (s *FileStore) Increment(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.value + 1
	if err := s.write(next); err != nil {
		return 0, err
	}
	s.value = next
	return next, nil
}

// Value implements Store.
func (s *FileStore) Value(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

// write persists v atomically: write a sibling temp file, then rename over
// the real one.
func (s *FileStore) write(v int64) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".counter-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(strconv.FormatInt(v, 10) + "\n")
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp: %v %v", ErrStore, werr, cerr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}
