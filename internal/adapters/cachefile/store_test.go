package cachefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/getlicense/internal/adapters/cachefile"
	"go.trai.ch/getlicense/internal/core/domain"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := cachefile.NewStore()

	cache, err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, domain.NewCache(), cache)
}

func TestStore_LoadBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t"), domain.FilePerm))

	cache, err := cachefile.NewStore().Load(path)
	require.NoError(t, err)
	assert.Empty(t, cache.Licenses)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"licenses": [1, 2`), domain.FilePerm))

	_, err := cachefile.NewStore().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())
}

func TestStore_LoadToleratesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	content := `{
  // edited by hand
  "licenses": {},
  "user_placeholders_cache": {"fullname": "Jane Doe",},
}`
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	cache, err := cachefile.NewStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", cache.UserPlaceholders["fullname"])
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.json")
	store := cachefile.NewStore()

	cache := domain.NewCache()
	cache.Licenses["mit"] = domain.LicenseEntry{
		SpdxID:             "MIT",
		Title:              "MIT License",
		Filename:           "mit.txt",
		Sha:                "abc",
		FileContentCached:  "Copyright [year]",
		PlaceholdersInBody: []string{"[year]"},
	}
	cache.DataFiles[domain.RulesDataKey] = domain.DataFileEntry{Sha: "r1", Content: map[string]any{"permissions": []any{}}}
	cache.UserPlaceholders["project"] = "widget"

	require.NoError(t, store.Save(path, cache))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"licenses\": {")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cache, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
