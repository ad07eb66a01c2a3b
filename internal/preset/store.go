package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/quartopress/coverforge/internal/state"
)

// FileStore keeps saved presets as individual JSON files in a directory,
// one file per preset, named by a generated ID.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preset dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes fields as a new preset and returns its ID.
func (s *FileStore) Save(fields state.Fields) (string, error) {
	data, err := Marshal(fields)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("write preset %s: %w", id, err)
	}
	return id, nil
}

// Load reads one preset by ID.
func (s *FileStore) Load(id string) (state.Fields, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return state.Fields{}, fmt.Errorf("read preset %s: %w", id, err)
	}
	return Unmarshal(data)
}

// Delete removes one preset by ID. Deleting a missing preset is not an
// error.
func (s *FileStore) Delete(id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete preset %s: %w", id, err)
	}
	return nil
}

// List returns the stored preset IDs, sorted.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *FileStore) path(id string) string {
	// IDs come from uuid.NewString, but the API accepts arbitrary strings;
	// strip any path separators before touching the filesystem.
	id = filepath.Base(id)
	return filepath.Join(s.dir, id+".json")
}
