package metroconfig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carimus/metrolink/pkg/metroconfig"
)

func TestMergeConfig(t *testing.T) {
	base := metroconfig.Config{
		"projectRoot":  "/app",
		"watchFolders": []interface{}{"/shared"},
		"resolver": map[string]interface{}{
			"sourceExts": []interface{}{"js", "jsx"},
			"platforms":  []interface{}{"ios"},
		},
		"server": map[string]interface{}{"port": 8081},
	}
	next := metroconfig.Config{
		"watchFolders": []string{"/work/lib", "/shared"},
		"resolver": map[string]interface{}{
			"blacklistRE": "(x)$",
			"platforms":   []interface{}{"android"},
		},
	}

	got, err := metroconfig.MergeConfig(base, next)
	require.NoError(t, err)

	want := metroconfig.Config{
		"projectRoot":  "/app",
		"watchFolders": []string{"/work/lib", "/shared"},
		"resolver": map[string]interface{}{
			"sourceExts":  []interface{}{"js", "jsx"},
			"platforms":   []interface{}{"android"},
			"blacklistRE": "(x)$",
		},
		"server":       map[string]interface{}{"port": 8081},
		"serializer":   map[string]interface{}{},
		"symbolicator": map[string]interface{}{},
		"transformer":  map[string]interface{}{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeConfig() mismatch (-want +got):\n%s", diff)
	}

	// Inputs are untouched.
	assert.Equal(t, []interface{}{"ios"}, base.Section("resolver")["platforms"])
	assert.NotContains(t, base.Section("resolver"), "blacklistRE")
	assert.NotContains(t, base, "symbolicator")
}

func TestMergeConfig_NilBase(t *testing.T) {
	got, err := metroconfig.MergeConfig(nil, metroconfig.Config{"watchFolders": []string{"/a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, got.WatchFolders())
	assert.Contains(t, got, "symbolicator")
}

func TestMerge_StripsEmptySymbolicator(t *testing.T) {
	t.Run("empty symbolicator removed", func(t *testing.T) {
		got, err := metroconfig.Merge(metroconfig.Config{}, metroconfig.Config{"watchFolders": []string{"/a"}})
		require.NoError(t, err)
		assert.NotContains(t, got, "symbolicator")
		assert.Contains(t, got, "resolver")
	})

	t.Run("populated symbolicator kept", func(t *testing.T) {
		base := metroconfig.Config{
			"symbolicator": map[string]interface{}{"customizeFrame": "fn"},
		}
		got, err := metroconfig.Merge(base, metroconfig.Config{})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"customizeFrame": "fn"}, got.Section("symbolicator"))
	})
}
