// Package store persists generated documents. It writes through an afero.Fs
// so the controller can run against the real filesystem or an in-memory one.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// DefaultPath is where the FE document is written, relative to the working
// directory.
const DefaultPath = "Chip.txt"

const filePerm os.FileMode = 0o644

// WriteError wraps a filesystem failure with the path being written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Store writes and reads whole documents.
type Store struct {
	fs afero.Fs
}

// New returns a Store over fs. A nil fs selects the OS filesystem.
func New(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// NewOS returns a Store over the OS filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// NewMemory returns a Store over an in-memory filesystem.
func NewMemory() *Store {
	return New(afero.NewMemMapFs())
}

// Fs exposes the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Write replaces the content of path with data, creating the file when
// needed.
func (s *Store) Write(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return errors.New("store: path is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Read returns the content of path.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("store: path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, path)
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}
