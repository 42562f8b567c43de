package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File persists each key as a JSON file under a base directory.
type File struct {
	baseDir string
}

// NewFile ensures the base directory exists and returns a handle.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (f *File) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	return data, nil
}

func (f *File) Write(_ context.Context, key string, value []byte) error {
	path := f.resolve(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit store file: %w", err)
	}
	return nil
}

func (f *File) Remove(_ context.Context, key string) error {
	if err := os.Remove(f.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete store file: %w", err)
	}
	return nil
}

// resolve maps a key to a file name, flattening path separators so a key can
// never escape the base directory.
func (f *File) resolve(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.baseDir, safe+".json")
}
