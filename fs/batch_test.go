package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/open-contracting/ocdsindex"
	"github.com/open-contracting/ocdsindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	t.Run("writes batch readable by ReadBatch", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		batch := ocdsindex.NewBatch(baseURL, ocdsindex.CrawlResult{
			"en": {{URL: baseURL + "en/#about", Title: "About", Text: "The standard"}},
		}, time.Unix(1577880000, 0))

		require.NoError(t, fs.WriteBatch(path, batch))

		got, err := fs.ReadBatch(path)
		require.NoError(t, err)
		assert.Equal(t, batch, got)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temporary file should be renamed")
	})

	t.Run("uses the transport field names", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		batch := ocdsindex.NewBatch(baseURL, ocdsindex.CrawlResult{"en": {}}, time.Unix(1577880000, 0))

		require.NoError(t, fs.WriteBatch(path, batch))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"base_url": "`+baseURL+`", "created_at": 1577880000, "documents": {"en": []}}`, string(data))
	})
}

func TestReadBatch(t *testing.T) {
	t.Parallel()

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, err := fs.ReadBatch(path)

		require.Error(t, err)
		assert.Equal(t, ocdsindex.EINVALID, ocdsindex.ErrorCode(err))
	})

	t.Run("returns error for batch without base URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"documents": {}}`), 0644))

		_, err := fs.ReadBatch(path)

		require.Error(t, err)
		assert.Equal(t, ocdsindex.EINVALID, ocdsindex.ErrorCode(err))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadBatch(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
