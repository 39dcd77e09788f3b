// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test MemoryFS symlink semantics

package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_BasicOperations(t *testing.T) {
	mfs := NewMemoryFS()

	require.NoError(t, mfs.WriteFile("/a/b/file.txt", []byte("content"), 0644))

	data, err := mfs.ReadFile("/a/b/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	info, err := mfs.Stat("/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.ReadFile("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFS_Symlinks(t *testing.T) {
	mfs := NewMemoryFS()
	require.NoError(t, mfs.WriteFile("/real/pkg/package.json", []byte("{}"), 0644))
	require.NoError(t, mfs.Symlink("/real/pkg", "/app/node_modules/pkg"))

	t.Run("lstat_sees_link", func(t *testing.T) {
		info, err := mfs.Lstat("/app/node_modules/pkg")
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&fs.ModeSymlink)
	})

	t.Run("stat_follows_link", func(t *testing.T) {
		info, err := mfs.Stat("/app/node_modules/pkg")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("intermediate_link_followed", func(t *testing.T) {
		data, err := mfs.ReadFile("/app/node_modules/pkg/package.json")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("readlink", func(t *testing.T) {
		target, err := mfs.Readlink("/app/node_modules/pkg")
		require.NoError(t, err)
		assert.Equal(t, "/real/pkg", target)

		_, err = mfs.Readlink("/real/pkg")
		assert.Error(t, err)
	})

	t.Run("relative_link", func(t *testing.T) {
		require.NoError(t, mfs.Symlink("../../real/pkg", "/app/node_modules/rel"))
		data, err := mfs.ReadFile("/app/node_modules/rel/package.json")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("duplicate_link_fails", func(t *testing.T) {
		err := mfs.Symlink("/elsewhere", "/app/node_modules/pkg")
		assert.True(t, errors.Is(err, fs.ErrExist))
	})

	t.Run("dangling_link", func(t *testing.T) {
		require.NoError(t, mfs.Symlink("/nowhere", "/app/node_modules/gone"))
		_, err := mfs.Stat("/app/node_modules/gone")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		_, err = mfs.Lstat("/app/node_modules/gone")
		assert.NoError(t, err)
	})

	t.Run("link_cycle", func(t *testing.T) {
		require.NoError(t, mfs.Symlink("/loop/b", "/loop/a"))
		require.NoError(t, mfs.Symlink("/loop/a", "/loop/b"))
		_, err := mfs.Stat("/loop/a")
		assert.Error(t, err)
	})
}

func TestMemoryFS_ReadDirSorted(t *testing.T) {
	mfs := NewMemoryFS()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, mfs.MkdirAll("/dir/"+name, 0755))
	}

	entries, err := mfs.ReadDir("/dir")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestMemoryFS_WithError(t *testing.T) {
	boom := errors.New("boom")
	mfs := NewMemoryFS().WithError("/broken", boom)

	_, err := mfs.Lstat("/broken")
	assert.ErrorIs(t, err, boom)
}
