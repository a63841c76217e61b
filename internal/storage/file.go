// ABOUTME: Plain JSON file Repository for the state blob.
// ABOUTME: Writes go to a temp file that is renamed into place.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateFileName is the file the JSON backend writes.
const StateFileName = "state.json"

// FileStore keeps the state blob in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, StateFileName)}, nil
}

// Path returns the state file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadState reads the state file. Returns nil when it does not exist.
func (f *FileStore) LoadState() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// SaveState atomically replaces the state file.
func (f *FileStore) SaveState(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("set state file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileStore) Close() error {
	return nil
}
