package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/open-contracting/ocdsindex"
	ocdsslog "github.com/open-contracting/ocdsindex/slog"
	"github.com/open-contracting/ocdsindex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither the flag nor the config file sets one.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Index service used instead of the SQLite database, for testing.
	IndexService ocdsindex.IndexService

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Now:    time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ocdsindex"),
		kong.Description("Crawl Sphinx documentation builds and index them for full-text search."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ocdsindex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = ocdsslog.NewLogger(stderr, cli.LogLevel)

	deps.Config = &Config{}
	if cli.Config != "" {
		if deps.Config, err = LoadConfig(cli.Config); err != nil {
			return err
		}
	}

	if needsIndex(kongCtx.Command()) {
		index := m.IndexService
		if index == nil {
			path := m.dbPath(cli, deps.Config)

			m.DB = sqlite.NewDB(path)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set OCDSINDEX_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", path, err)
			}
			defer m.Close()

			svc := sqlite.NewIndexService(m.DB)
			svc.Analyzers = deps.Config.Analyzers
			if m.Now != nil {
				svc.Now = m.Now
			}
			index = svc
		}
		deps.Index = ocdsslog.NewLoggingIndexService(index, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// dbPath returns the database path, preferring the flag, then the config
// file, then the program default.
func (m *Main) dbPath(cli *CLI, cfg *Config) string {
	if cli.DB != "" {
		return cli.DB
	}
	if cfg.DB != "" {
		return cfg.DB
	}
	return m.DBPath
}

// needsIndex reports whether the command reads or writes the search index.
func needsIndex(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "index", "copy", "expire", "search":
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ocdsindex.db"
	}
	dir := filepath.Join(home, ".ocdsindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ocdsindex.db")
}
