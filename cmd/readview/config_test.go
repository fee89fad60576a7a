package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/readview/cmd/readview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("parses YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "readview.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
cacheDir: /var/cache/readview
timeout: 45s
rate: 0.5
store: sqlite
extractor: trafilatura
verbose: true
`), 0644))

		fc, err := main.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, main.FileConfig{
			CacheDir:  "/var/cache/readview",
			Timeout:   45 * time.Second,
			Rate:      0.5,
			Store:     "sqlite",
			Extractor: "trafilatura",
			Verbose:   true,
		}, fc)
	})

	t.Run("parses JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "readview.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"store": "sqlite", "noCache": true, "timeout": "30s"}`), 0644))

		fc, err := main.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "sqlite", fc.Store)
		assert.True(t, fc.NoCache)
		assert.Equal(t, 30*time.Second, fc.Timeout)
	})

	t.Run("returns error for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "readview.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0644))

		_, err := main.LoadConfigFile(path)

		require.Error(t, err)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}
