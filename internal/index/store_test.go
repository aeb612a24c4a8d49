package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kherrors "github.com/systmms/keyhold/internal/errors"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "keys.json"))
}

func TestFileStore_LoadMissingFileIsEmptyIndex(t *testing.T) {
	store := tempStore(t)

	idx, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := tempStore(t)

	saved := New(
		Entry{Key: "db"},
		Entry{Key: "db", Tag: "prod"},
		Entry{Key: "github", Tag: "work"},
	)
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved.Entries(), loaded.Entries())
}

func TestFileStore_SaveEmptyIndex(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.Save(New()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestFileStore_SaveReplacesNotMerges(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.Save(New(Entry{Key: "db"}, Entry{Key: "github"})))
	require.NoError(t, store.Save(New(Entry{Key: "db"})))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: "db"}}, loaded.Entries())
}

func TestFileStore_LoadInvalidJSON(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{truncated"), 0o600))

	_, err := store.Load()
	require.Error(t, err)

	var idxErr kherrors.IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, "load", idxErr.Op)
}

func TestFileStore_LoadRejectsWrongStructure(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"entries not an array", `{"entries": {"key": "db"}}`},
		{"entry missing key", `{"entries": [{"tag": "prod"}]}`},
		{"entry with empty key", `{"entries": [{"key": ""}]}`},
		{"unknown top-level field", `{"keys": ["db"]}`},
		{"top-level array", `[{"key": "db"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tempStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.data), 0o600))

			_, err := store.Load()
			var idxErr kherrors.IndexError
			require.ErrorAs(t, err, &idxErr)
		})
	}
}

func TestFileStore_LoadCollapsesDuplicates(t *testing.T) {
	store := tempStore(t)
	data := `{"entries": [{"key": "db"}, {"key": "db"}, {"key": "db", "tag": "prod"}]}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(data), 0o600))

	idx, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "keys.json"))

	require.NoError(t, store.Save(New(Entry{Key: "db"})))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keys.json", files[0].Name())
}

func TestFileStore_SaveSetsOwnerOnlyPermissions(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(New(Entry{Key: "db"})))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SaveToUnwritableDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing", "keys.json"))

	err := store.Save(New(Entry{Key: "db"}))
	var idxErr kherrors.IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, "save", idxErr.Op)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(New(Entry{Key: "db"})))

	idx, err := store.Load()
	require.NoError(t, err)
	idx.Add(Entry{Key: "github"})

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, again.Len())
}
