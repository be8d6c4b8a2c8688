package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/pkg/adapters/file"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/aretw0/logos/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunResultStoreContract(t, store)
}

func TestFileStore_DefaultDir(t *testing.T) {
	assert.Equal(t, file.DefaultDir, file.NewStore("").BasePath)
}

func TestFileStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(t.TempDir())

	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "dir/key"} {
		assert.ErrorIs(t, store.Put(ctx, key, domain.Result{}), file.ErrInvalidKey, key)
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, file.ErrInvalidKey, key)
		assert.ErrorIs(t, store.Delete(ctx, key), file.ErrInvalidKey, key)
	}
}

func TestFileStore_List(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "results")
	store := file.NewStore(dir)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, store.Put(ctx, logos.CacheKey("A"), logos.Process("A")))
	require.NoError(t, store.Put(ctx, logos.CacheKey("B"), logos.Process("B")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	keys, err = store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{logos.CacheKey("A"), logos.CacheKey("B")}, keys)
}

func TestFileStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.NewStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))
	_, err := store.Get(ctx, "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrResultNotFound)
}

func TestFileStore_WithEngine(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(t.TempDir())
	engine := logos.New(logos.WithStore(store))

	first := engine.Process(ctx, "hello, world")
	cached, err := store.Get(ctx, logos.CacheKey("hello, world"))
	require.NoError(t, err)
	assert.Equal(t, first, cached)
	assert.Equal(t, first, engine.Process(ctx, "hello, world"))
}
