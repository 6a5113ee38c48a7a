package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	ix := &Index{Model: "local-hash", Entries: []Entry{
		{Vector: []float32{0.1, 0.2, 0.3}, Text: "chunk one"},
		{Vector: []float32{0.4, 0.5, 0.6}, Text: "chunk two"},
	}}
	require.NoError(t, s.Save(ix, 7))

	got, err := s.Load(7)
	require.NoError(t, err)
	assert.Equal(t, ix.Model, got.Model)
	assert.Equal(t, ix.Entries, got.Entries)
}

func TestStoreLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Load(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSaveReplacesWhole(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(&Index{Entries: []Entry{{Vector: []float32{1}, Text: "old"}}}, 1))
	require.NoError(t, s.Save(&Index{Entries: []Entry{{Vector: []float32{2}, Text: "new"}}}, 1))

	got, err := s.Load(1)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "new", got.Entries[0].Text)
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Save(&Index{Entries: []Entry{{Vector: []float32{1}, Text: "x"}}}, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index_3", filepath.Base(entries[0].Name()))
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(&Index{Entries: []Entry{{Vector: []float32{1}, Text: "x"}}}, 9))
	require.NoError(t, s.Delete(9))
	_, err := s.Load(9)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent artifact is fine
	assert.NoError(t, s.Delete(9))
}
