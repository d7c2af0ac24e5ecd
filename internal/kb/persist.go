package kb

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Persister loads and saves knowledge base snapshots
type Persister interface {
	Load() (*Snapshot, error)
	Save(snap *Snapshot) error
}

// YAMLFile persists snapshots to a YAML file. The path "-" writes to Stdout.
type YAMLFile struct {
	Path   string
	Stdout io.Writer
}

// NewYAMLFile creates a YAML file persister for path
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{Path: path, Stdout: os.Stdout}
}

// Load reads the snapshot at Path
func (f *YAMLFile) Load() (*Snapshot, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Save writes snap to Path, replacing any previous file atomically
func (f *YAMLFile) Save(snap *Snapshot) (err error) {
	if f.Path == "-" {
		return Encode(f.Stdout, snap)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.yaml")
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := Encode(tmp, snap); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}
