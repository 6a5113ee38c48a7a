package index

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound means no index artifact exists for the figure yet.
var ErrNotFound = errors.New("index not found")

// Store persists one index artifact per figure under a base directory,
// as an opaque gob blob named index_<figureID>.
type Store struct {
	dir string
}

func NewStore(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(figureID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("index_%d", figureID))
}

// Save replaces the figure's artifact. The new index is written to a
// temp file and renamed over the old one, so a concurrent Load always
// sees a complete prior-or-new artifact, never a torn write.
func (s *Store) Save(ix *Index, figureID uint) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("index dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, ".index-*")
	if err != nil {
		return fmt.Errorf("temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(ix); err != nil {
		tmp.Close()
		return fmt.Errorf("encode index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(figureID))
}

func (s *Store) Load(figureID uint) (*Index, error) {
	f, err := os.Open(s.path(figureID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("figure %d: %w", figureID, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	var ix Index
	if err := gob.NewDecoder(f).Decode(&ix); err != nil {
		return nil, fmt.Errorf("decode index for figure %d: %w", figureID, err)
	}
	return &ix, nil
}

// Delete removes the artifact; a missing artifact is not an error.
func (s *Store) Delete(figureID uint) error {
	if err := os.Remove(s.path(figureID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
