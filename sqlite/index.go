package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/open-contracting/ocdsindex"
)

// Compile-time interface verification.
var _ ocdsindex.IndexService = (*IndexService)(nil)

// FTS5 tokenizers per analyzer. Analyzers without an entry use defaultTokenizer.
var tokenizers = map[string]string{
	"english": "porter unicode61 remove_diacritics 2",
}

const defaultTokenizer = "unicode61 remove_diacritics 2"

// IndexService implements ocdsindex.IndexService using SQLite. Each language
// has a table named ocdsindex_<lang> holding the documents and an FTS5 table
// named ocdsindex_<lang>_fts indexing their title and text.
type IndexService struct {
	db *DB

	// Analyzers overrides ocdsindex.Analyzer for some languages.
	Analyzers map[string]string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db, Now: time.Now}
}

// Index replaces the documents of the batch's base URL in each of the batch's
// languages with the batch's documents, in one transaction.
func (s *IndexService) Index(ctx context.Context, batch *ocdsindex.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, lang := range batch.Documents.Languages() {
		table, err := tableName(lang)
		if err != nil {
			return err
		}

		if err := s.ensureIndex(ctx, tx, lang); err != nil {
			return fmt.Errorf("failed to create index %s: %w", table, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE base_url = ?", batch.BaseURL); err != nil {
			return fmt.Errorf("failed to delete documents from %s: %w", table, err)
		}

		for _, record := range batch.Documents[lang] {
			if record.URL == "" {
				return ocdsindex.Errorf(ocdsindex.EINVALID, "document URL required")
			}
			if err := upsert(ctx, tx, table, record, batch.BaseURL, batch.CreatedAt); err != nil {
				return fmt.Errorf("failed to index %s: %w", record.URL, err)
			}
		}
	}

	return tx.Commit()
}

// Expire deletes documents created before the given time from every
// language index, keeping those whose base URL is excluded.
func (s *IndexService) Expire(ctx context.Context, before time.Time, exclude []string) (int, error) {
	langs, err := s.Languages(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var deleted int
	for _, lang := range langs {
		table, err := tableName(lang)
		if err != nil {
			return 0, err
		}

		var query strings.Builder
		args := []any{before.Unix()}
		query.WriteString("DELETE FROM " + table + " WHERE created_at < ?")
		if len(exclude) > 0 {
			query.WriteString(" AND base_url NOT IN (" + placeholders(len(exclude)) + ")")
			for _, baseURL := range exclude {
				args = append(args, baseURL)
			}
		}

		result, err := tx.ExecContext(ctx, query.String(), args...)
		if err != nil {
			return 0, fmt.Errorf("failed to expire documents from %s: %w", table, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		deleted += int(n)
	}

	return deleted, tx.Commit()
}

// Copy adds a document with the destination base URL for each document with
// the source base URL, in every language index.
func (s *IndexService) Copy(ctx context.Context, source, destination string) (int, error) {
	if source == "" || destination == "" {
		return 0, ocdsindex.Errorf(ocdsindex.EINVALID, "source and destination base URLs required")
	}

	langs, err := s.Languages(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var copied int
	for _, lang := range langs {
		table, err := tableName(lang)
		if err != nil {
			return 0, err
		}

		results, err := findByBaseURL(ctx, tx, table, source)
		if err != nil {
			return 0, err
		}

		for _, result := range results {
			record := result.Record
			record.URL = strings.ReplaceAll(record.URL, source, destination)
			baseURL := strings.ReplaceAll(result.BaseURL, source, destination)

			if err := upsert(ctx, tx, table, record, baseURL, result.CreatedAt); err != nil {
				return 0, fmt.Errorf("failed to copy %s: %w", result.URL, err)
			}
			copied++
		}
	}

	return copied, tx.Commit()
}

// Search returns documents matching every term of the query, best match first.
func (s *IndexService) Search(ctx context.Context, lang, query string, opts ocdsindex.SearchOptions) ([]ocdsindex.SearchResult, error) {
	table, err := tableName(lang)
	if err != nil {
		return nil, err
	}

	match := ftsQuery(query)
	if match == "" {
		return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "search query required")
	}

	var exists int
	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM indexes WHERE language = ?", lang).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ocdsindex.Errorf(ocdsindex.ENOTFOUND, "no index for language %q", lang)
	}

	fts := table + "_fts"

	var b strings.Builder
	args := []any{match}
	b.WriteString("SELECT d.url, d.title, d.text, d.base_url, d.created_at, -bm25(" + fts + ")")
	b.WriteString(" FROM " + fts + " JOIN " + table + " d ON d.rowid = " + fts + ".rowid")
	b.WriteString(" WHERE " + fts + " MATCH ?")
	if opts.BaseURL != "" {
		b.WriteString(" AND d.base_url = ?")
		args = append(args, opts.BaseURL)
	}
	b.WriteString(" ORDER BY bm25(" + fts + ")")
	appendLimit(&b, &args, opts.Limit)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", table, err)
	}
	defer rows.Close()

	var results []ocdsindex.SearchResult
	for rows.Next() {
		var r ocdsindex.SearchResult
		if err := rows.Scan(&r.URL, &r.Title, &r.Text, &r.BaseURL, &r.CreatedAt, &r.Score); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// Languages returns the language codes that have an index, in sorted order.
func (s *IndexService) Languages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT language FROM indexes ORDER BY language")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}

	return langs, rows.Err()
}

// analyzer returns the analyzer name for a language.
func (s *IndexService) analyzer(lang string) string {
	if name, ok := s.Analyzers[lang]; ok {
		return name
	}
	return ocdsindex.Analyzer(lang)
}

// ensureIndex creates the document and full-text tables of a language if
// they don't exist. The FTS5 table is an external-content table kept in sync
// by triggers.
func (s *IndexService) ensureIndex(ctx context.Context, tx *sql.Tx, lang string) error {
	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM indexes WHERE language = ?", lang).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	analyzer := s.analyzer(lang)
	tokenizer, ok := tokenizers[analyzer]
	if !ok {
		tokenizer = defaultTokenizer
	}

	table, err := tableName(lang)
	if err != nil {
		return err
	}

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			url TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			text TEXT NOT NULL,
			base_url TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			content_hash TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_%[1]s_base_url ON %[1]s(base_url);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_created_at ON %[1]s(created_at);

		CREATE VIRTUAL TABLE IF NOT EXISTS %[1]s_fts USING fts5(
			title, text,
			content='%[1]s',
			content_rowid='rowid',
			tokenize='%[2]s'
		);

		CREATE TRIGGER IF NOT EXISTS %[1]s_ai AFTER INSERT ON %[1]s BEGIN
			INSERT INTO %[1]s_fts(rowid, title, text)
			VALUES (new.rowid, new.title, new.text);
		END;

		CREATE TRIGGER IF NOT EXISTS %[1]s_ad AFTER DELETE ON %[1]s BEGIN
			INSERT INTO %[1]s_fts(%[1]s_fts, rowid, title, text)
			VALUES ('delete', old.rowid, old.title, old.text);
		END;

		CREATE TRIGGER IF NOT EXISTS %[1]s_au AFTER UPDATE ON %[1]s BEGIN
			INSERT INTO %[1]s_fts(%[1]s_fts, rowid, title, text)
			VALUES ('delete', old.rowid, old.title, old.text);
			INSERT INTO %[1]s_fts(rowid, title, text)
			VALUES (new.rowid, new.title, new.text);
		END;
	`, table, tokenizer)

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO indexes (language, analyzer, created_at) VALUES (?, ?, ?)",
		lang, analyzer, s.Now().UTC().Format(time.RFC3339))
	return err
}

// upsert inserts a document or updates the document with the same URL.
// An upsert, unlike INSERT OR REPLACE, fires the update trigger, which keeps
// the full-text table in sync.
func upsert(ctx context.Context, tx *sql.Tx, table string, record ocdsindex.Record, baseURL string, createdAt int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO `+table+` (url, title, text, base_url, created_at, content_hash)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			text = excluded.text,
			base_url = excluded.base_url,
			created_at = excluded.created_at,
			content_hash = excluded.content_hash
	`, record.URL, record.Title, record.Text, baseURL, createdAt, hashContent(record.Title+"\x00"+record.Text))
	return err
}

// findByBaseURL returns the documents of a table with the given base URL.
func findByBaseURL(ctx context.Context, tx *sql.Tx, table, baseURL string) ([]ocdsindex.SearchResult, error) {
	rows, err := tx.QueryContext(ctx, "SELECT url, title, text, base_url, created_at FROM "+table+" WHERE base_url = ? ORDER BY url", baseURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ocdsindex.SearchResult
	for rows.Next() {
		var r ocdsindex.SearchResult
		if err := rows.Scan(&r.URL, &r.Title, &r.Text, &r.BaseURL, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// tableName returns the document table of a language. Language codes are
// interpolated into SQL, so only two lowercase ASCII letters are accepted.
func tableName(lang string) (string, error) {
	if !ocdsindex.IsIndexLanguage(lang) {
		return "", ocdsindex.Errorf(ocdsindex.EINVALID, "unsupported language code %q", lang)
	}
	return "ocdsindex_" + lang, nil
}
