package ocdsindex_test

import (
	"testing"
	"time"

	"github.com/open-contracting/ocdsindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlResult_Languages(t *testing.T) {
	t.Parallel()

	result := ocdsindex.CrawlResult{
		"fr": nil,
		"en": {{URL: "https://example.org/en/#a"}},
		"es": {{URL: "https://example.org/es/#a"}, {URL: "https://example.org/es/#b"}},
	}

	assert.Equal(t, []string{"en", "es", "fr"}, result.Languages())
	assert.Equal(t, 3, result.Len())
}

func TestAllowAll(t *testing.T) {
	t.Parallel()

	assert.True(t, ocdsindex.AllowAll{}.Allow("/build/en/404", "index.html"))
}

func TestExcludeDirs_Allow(t *testing.T) {
	t.Parallel()

	allow := ocdsindex.NewExcludeDirs(ocdsindex.DefaultExcludedDirs...)

	tests := []struct {
		name string
		dir  string
		file string
		want bool
	}{
		{name: "content page", dir: "/build/en/guidance", file: "index.html", want: true},
		{name: "error page", dir: "/build/en/404", file: "index.html", want: false},
		{name: "privacy notice", dir: "/build/es/privacy-notice", file: "index.html", want: false},
		{name: "only the immediate directory counts", dir: "/build/en/404/assets", file: "logo.png", want: true},
		{name: "file named like an excluded directory", dir: "/build/en", file: "404.html", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, allow.Allow(tt.dir, tt.file))
		})
	}
}

func TestBatch_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts two-letter languages", func(t *testing.T) {
		t.Parallel()

		batch := ocdsindex.NewBatch("https://example.org/dev/", ocdsindex.CrawlResult{"en": nil}, time.Unix(1577880000, 0))

		require.NoError(t, batch.Validate())
		assert.Equal(t, int64(1577880000), batch.CreatedAt)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		batch := &ocdsindex.Batch{}

		err := batch.Validate()
		require.Error(t, err)
		assert.Equal(t, ocdsindex.EINVALID, ocdsindex.ErrorCode(err))
	})

	t.Run("rejects other language keys", func(t *testing.T) {
		t.Parallel()

		batch := &ocdsindex.Batch{BaseURL: "https://example.org/", Documents: ocdsindex.CrawlResult{"eng": nil}}

		err := batch.Validate()
		require.Error(t, err)
		assert.Equal(t, ocdsindex.EINVALID, ocdsindex.ErrorCode(err))
	})
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "english", ocdsindex.Analyzer("en"))
	assert.Equal(t, "spanish", ocdsindex.Analyzer("es"))
	assert.Equal(t, ocdsindex.AnalyzerStandard, ocdsindex.Analyzer("uk"))
}

func TestIsIndexLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want bool
	}{
		{lang: "en", want: true},
		{lang: "zh", want: true},
		{lang: "EN", want: false},
		{lang: "1x", want: false},
		{lang: "é1", want: false},
		{lang: "eng", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ocdsindex.IsIndexLanguage(tt.lang), tt.lang)
		if tt.want {
			assert.True(t, ocdsindex.IsLanguageCode(tt.lang), tt.lang)
		}
	}
}
