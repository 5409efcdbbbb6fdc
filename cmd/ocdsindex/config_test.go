package main_test

import (
	"path/filepath"
	"testing"

	main "github.com/open-contracting/ocdsindex/cmd/ocdsindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads valid config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", `db: /var/lib/ocdsindex/index.db
exclude_dirs:
  - "404"
  - privacy-notice
  - search
analyzers:
  de: standard
  en: english
`)

		cfg, err := main.LoadConfig(filepath.Join(dir, "config.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "/var/lib/ocdsindex/index.db", cfg.DB)
		assert.Equal(t, []string{"404", "privacy-notice", "search"}, cfg.ExcludeDirs)
		assert.Equal(t, map[string]string{"de": "standard", "en": "english"}, cfg.Analyzers)
	})

	t.Run("empty file is valid", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", "")

		cfg, err := main.LoadConfig(filepath.Join(dir, "config.yaml"))

		require.NoError(t, err)
		assert.Nil(t, cfg.ExcludeDirs)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			content string
			wantErr error
		}{
			{name: "analyzer language", content: "analyzers:\n  eng: english\n", wantErr: main.ErrInvalidAnalyzerLanguage},
			{name: "empty analyzer", content: "analyzers:\n  en: \"\"\n", wantErr: main.ErrEmptyAnalyzer},
			{name: "empty exclude dir", content: "exclude_dirs: [\"\"]\n", wantErr: main.ErrEmptyExcludeDir},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				dir := t.TempDir()
				writeFile(t, dir, "config.yaml", tt.content)

				_, err := main.LoadConfig(filepath.Join(dir, "config.yaml"))

				require.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", "exclude_dirs: [unclosed\n")

		_, err := main.LoadConfig(filepath.Join(dir, "config.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("reports missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}
