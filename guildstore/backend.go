package guildstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend loads and saves the serialized store snapshot. The store always
// rewrites the snapshot wholesale; there is no partial-update path.
type Backend interface {
	// Load returns the last saved snapshot, or (nil, nil) if none exists yet.
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileBackend persists the snapshot as a single JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend creates the parent directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("could not create guild store directory: %w", err)
		}
	}
	return &FileBackend{path: path}, nil
}

func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Save(data []byte) error {
	return os.WriteFile(b.path, data, 0644)
}
