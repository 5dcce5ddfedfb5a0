package textstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds text store configuration
type Config struct {
	DataDir string
}

// Store is a line-oriented flat-file store. Each collection is one file of
// newline-separated records; reads return the whole file and writes rewrite
// it wholesale. There is no locking: the store assumes a single writer.
type Store struct {
	dataDir string
}

// Open creates the data directory if needed and returns a store rooted there.
func Open(cfg Config) (*Store, error) {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dataDir: cfg.DataDir}, nil
}

// DataDir returns the directory backing the store.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Load returns all non-empty lines of the named collection. A missing file
// is an empty collection, not an error.
func (s *Store) Load(name string) ([]string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return lines, nil
}

// Save rewrites the named collection with the given records.
func (s *Store) Save(name string, lines []string) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}
