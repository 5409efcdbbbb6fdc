package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/open-contracting/ocdsindex"
	main "github.com/open-contracting/ocdsindex/cmd/ocdsindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://standard.open-contracting.org/dev/"

const guidePage = `<!DOCTYPE html>
<html>
<head><title>Guide — Open Contracting Data Standard</title></head>
<body>
<div class="section" id="tendering">
<h1>Tendering<a class="headerlink" href="#tendering">¶</a></h1>
<p>Planning and tender stages.</p>
</div>
</body>
</html>`

var createdAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newMain returns a Main using a temporary database and a fixed clock.
func newMain(dbPath string, now time.Time) *main.Main {
	m := main.NewMain()
	m.DBPath = dbPath
	m.Now = func() time.Time { return now }
	return m
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := newMain(filepath.Join(t.TempDir(), "test.db"), createdAt)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"sphinx", "extension-explorer", "index", "copy", "expire", "search"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := newMain(filepath.Join(t.TempDir(), "test.db"), createdAt)

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_CrawlIndexSearch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "en/guide.html", guidePage)
	writeFile(t, root, "en/404/index.html", guidePage)

	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "test.db")
	output := filepath.Join(tmp, "batch.json")
	ctx := context.Background()

	// Crawl.
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := newMain(dbPath, createdAt).Run(ctx, []string{"sphinx", root, baseURL, "-o", output}, stdout, stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var batch ocdsindex.Batch
	require.NoError(t, json.Unmarshal(data, &batch))
	assert.Equal(t, baseURL, batch.BaseURL)
	assert.Equal(t, createdAt.Unix(), batch.CreatedAt)
	assert.Equal(t, ocdsindex.CrawlResult{
		"en": {{
			URL:   baseURL + "en/guide.html#tendering",
			Title: "Guide - Tendering",
			Text:  "Planning and tender stages.",
		}},
	}, batch.Documents)

	// Index.
	stdout.Reset()
	err = newMain(dbPath, createdAt).Run(ctx, []string{"index", output}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Indexed 1 documents")

	// Search.
	stdout.Reset()
	err = newMain(dbPath, createdAt).Run(ctx, []string{"search", "en", "tender"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), baseURL+"en/guide.html#tendering")

	// Copy.
	stdout.Reset()
	err = newMain(dbPath, createdAt).Run(ctx, []string{"copy", baseURL, "https://standard.open-contracting.org/1.1/"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Copied 1 documents")

	// Expire everything but the copy.
	excludeFile := filepath.Join(tmp, "exclude.txt")
	require.NoError(t, os.WriteFile(excludeFile, []byte("https://standard.open-contracting.org/1.1/\n"), 0644))

	stdout.Reset()
	later := createdAt.Add(ocdsindex.RetentionPeriod + 24*time.Hour)
	err = newMain(dbPath, later).Run(ctx, []string{"expire", "--exclude-file", excludeFile}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Expired 1 documents")

	stdout.Reset()
	err = newMain(dbPath, later).Run(ctx, []string{"search", "en", "tender"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "https://standard.open-contracting.org/1.1/en/guide.html#tendering")
	assert.NotContains(t, stdout.String(), baseURL+"en/guide.html#tendering")
}

func TestMain_Run_Config(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "en/404/index.html", guidePage)

	tmp := t.TempDir()
	configPath := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("exclude_dirs: []\n"), 0644))

	stdout := &bytes.Buffer{}
	err := newMain(filepath.Join(tmp, "test.db"), createdAt).Run(context.Background(),
		[]string{"--config", configPath, "sphinx", root, baseURL}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	var batch ocdsindex.Batch
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &batch))
	require.Len(t, batch.Documents["en"], 1)
	assert.Equal(t, baseURL+"en/404/#tendering", batch.Documents["en"][0].URL)
}

func TestMain_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tmp := t.TempDir()
	configPath := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("analyzers:\n  english: en\n"), 0644))

	err := newMain(filepath.Join(tmp, "test.db"), createdAt).Run(context.Background(),
		[]string{"--config", configPath, "sphinx", root, baseURL}, &bytes.Buffer{}, &bytes.Buffer{})

	require.ErrorIs(t, err, main.ErrInvalidAnalyzerLanguage)
}
