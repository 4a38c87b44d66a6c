package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilePersister stores each collection as a JSON file under a data
// directory. This is the default storage backend.
type FilePersister struct {
	Dir string
}

// NewFilePersister creates the data directory if needed.
func NewFilePersister(dir string) (*FilePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FilePersister{Dir: dir}, nil
}

func (p *FilePersister) path(name string) string {
	return filepath.Join(p.Dir, name+".json")
}

// Load reads a collection file into out.
func (p *FilePersister) Load(name string, out interface{}) (bool, error) {
	data, err := os.ReadFile(p.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return true, nil
}

// Save overwrites a collection file. The write goes through a temp file and
// a rename so a crash mid-write cannot truncate the previous snapshot.
func (p *FilePersister) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	tmp := p.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, p.path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// Reset removes the named collection files.
func (p *FilePersister) Reset(names ...string) error {
	for _, name := range names {
		if err := os.Remove(p.path(name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}
