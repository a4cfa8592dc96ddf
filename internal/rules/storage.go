package rules

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the durable persistence port for the rule store. Load reports
// ok=false when nothing has been persisted yet.
type Storage interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// FileStorage persists rule bytes at a single file path.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed Storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the persisted rule bytes. A missing file is not an error.
func (s *FileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read rules file: %w", err)
	}
	return data, true, nil
}

// Save writes the rule bytes, creating parent directories as needed.
func (s *FileStorage) Save(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create rules dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write rules file: %w", err)
	}
	return nil
}

// MemoryStorage is an in-process Storage used by tests and one-shot runs.
type MemoryStorage struct {
	data []byte
	ok   bool
}

// NewMemoryStorage creates an empty in-memory Storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the last saved bytes.
func (s *MemoryStorage) Load() ([]byte, bool, error) {
	return s.data, s.ok, nil
}

// Save retains the bytes in memory.
func (s *MemoryStorage) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.ok = true
	return nil
}

// Compile-time checks that both implementations satisfy the port.
var (
	_ Storage = (*FileStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)
