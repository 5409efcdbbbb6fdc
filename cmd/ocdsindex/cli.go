package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/open-contracting/ocdsindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config
	Index  ocdsindex.IndexService
	Now    func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"YAML configuration file" env:"OCDSINDEX_CONFIG" type:"path"`
	DB       string `help:"SQLite database path" env:"OCDSINDEX_DB" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"OCDSINDEX_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error"`

	Sphinx            SphinxCmd            `cmd:"" help:"Crawl a Sphinx build and write its documents as JSON"`
	ExtensionExplorer ExtensionExplorerCmd `cmd:"" name:"extension-explorer" help:"Crawl an Extension Explorer build and write its documents as JSON"`
	Index             IndexCmd             `cmd:"" help:"Index the documents of a JSON file"`
	Copy              CopyCmd              `cmd:"" help:"Copy documents from one base URL to another"`
	Expire            ExpireCmd            `cmd:"" help:"Delete documents older than the retention period"`
	Search            SearchCmd            `cmd:"" help:"Search the documents of a language"`
}

// SphinxCmd is the "sphinx" subcommand.
type SphinxCmd struct {
	Directory  string   `arg:"" help:"Directory of the Sphinx build" type:"existingdir"`
	BaseURL    string   `arg:"" name:"base-url" help:"URL at which the directory is served"`
	Output     string   `short:"o" help:"Write JSON to this file instead of stdout" type:"path"`
	ExcludeDir []string `name:"exclude-dir" help:"Skip files in directories with this name (repeatable)"`
}

// ExtensionExplorerCmd is the "extension-explorer" subcommand.
type ExtensionExplorerCmd struct {
	Directory string `arg:"" help:"Directory of the Extension Explorer build" type:"existingdir"`
	Output    string `short:"o" help:"Write JSON to this file instead of stdout" type:"path"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	File string `arg:"" help:"JSON file written by the sphinx or extension-explorer command" type:"existingfile"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Source      string `arg:"" help:"Base URL of the documents to copy"`
	Destination string `arg:"" help:"Base URL of the copies"`
}

// ExpireCmd is the "expire" subcommand.
type ExpireCmd struct {
	ExcludeFile string `help:"File of base URLs whose documents never expire, one per line" type:"existingfile"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Lang    string `arg:"" help:"Language code"`
	Query   string `arg:"" help:"Search terms"`
	BaseURL string `name:"base-url" help:"Only match documents of this base URL"`
	Limit   int    `short:"n" default:"10" help:"Maximum number of results"`
	Width   int    `default:"60" help:"Column width of titles"`
}
