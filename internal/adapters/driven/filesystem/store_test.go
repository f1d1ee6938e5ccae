package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStore_ExpandGlob(t *testing.T) {
	ctx := context.Background()

	t.Run("matches files and skips directories", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "b.txt", "b")
		writeTestFile(t, dir, "a.txt", "a")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.txt"), 0755))

		store := NewStore(0)
		paths, err := store.ExpandGlob(ctx, filepath.Join(dir, "*.txt"))

		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Equal(t, filepath.Join(dir, "a.txt"), paths[0])
		assert.Equal(t, filepath.Join(dir, "b.txt"), paths[1])
	})

	t.Run("doublestar descends into subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "top.go", "")
		writeTestFile(t, dir, "pkg/deep/nested.go", "")
		writeTestFile(t, dir, "pkg/readme.md", "")

		store := NewStore(0)
		paths, err := store.ExpandGlob(ctx, filepath.Join(dir, "**", "*.go"))

		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Contains(t, paths, filepath.Join(dir, "top.go"))
		assert.Contains(t, paths, filepath.Join(dir, "pkg", "deep", "nested.go"))
	})

	t.Run("same pattern yields the same order", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
			writeTestFile(t, dir, name, "")
		}

		store := NewStore(0)
		first, err := store.ExpandGlob(ctx, filepath.Join(dir, "*.txt"))
		require.NoError(t, err)
		second, err := store.ExpandGlob(ctx, filepath.Join(dir, "*.txt"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		store := NewStore(0)
		_, err := store.ExpandGlob(ctx, "[")
		require.Error(t, err)
	})

	t.Run("no matches returns empty list", func(t *testing.T) {
		store := NewStore(0)
		paths, err := store.ExpandGlob(ctx, filepath.Join(t.TempDir(), "*.xyz"))
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestStore_ReadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("reads text content", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, dir, "a.txt", "hello\nworld")

		store := NewStore(0)
		content, err := store.ReadFile(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "hello\nworld", content)
	})

	t.Run("binary content fails with ErrNotText", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "blob.bin")
		require.NoError(t, os.WriteFile(path, []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}, 0644))

		store := NewStore(0)
		_, err := store.ReadFile(ctx, path)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotText)
	})

	t.Run("invalid utf-8 fails with ErrNotText", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "latin1.txt")
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0644))

		store := NewStore(0)
		_, err := store.ReadFile(ctx, path)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotText)
	})

	t.Run("oversized file fails with ErrFileTooLarge", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, dir, "big.txt", "0123456789")

		store := NewStore(5)
		_, err := store.ReadFile(ctx, path)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("missing file fails", func(t *testing.T) {
		store := NewStore(0)
		_, err := store.ReadFile(ctx, filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
	})
}

func TestStore_WriteFile(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces content", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, dir, "a.txt", "old")

		store := NewStore(0)
		require.NoError(t, store.WriteFile(ctx, path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("preserves existing permissions", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "script.sh")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))

		store := NewStore(0)
		require.NoError(t, store.WriteFile(ctx, path, "#!/bin/sh\necho ok\n"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})
}

func TestIsText(t *testing.T) {
	assert.True(t, isText([]byte("plain ascii")))
	assert.True(t, isText([]byte("unicode: héllo ☺")))
	assert.True(t, isText([]byte{}))
	assert.False(t, isText([]byte{'a', 0x00, 'b'}))
	assert.False(t, isText([]byte{0xff, 0xfe}))
}
