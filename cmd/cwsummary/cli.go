package main

import (
	"context"
	"io"

	"github.com/fwojciec/cwsummary"
	"github.com/fwojciec/cwsummary/sqlite"
	"github.com/fwojciec/cwsummary/summary"
)

// FileImporter copies local files into the host file store.
type FileImporter interface {
	ImportFile(ctx context.Context, srcPath string) (*cwsummary.File, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Pages     cwsummary.PageService
	Config    cwsummary.ConfigStore
	Importer  FileImporter
	Summaries *summary.Builder
	Markdown  cwsummary.Converter

	// NewAsker creates an Asker authenticated with apiKey.
	NewAsker func(ctx context.Context, apiKey string) (cwsummary.Asker, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log storage, extraction and model calls to stderr"`

	Import  ImportCmd  `cmd:"" help:"Import a page from a JSON file"`
	Pages   PagesCmd   `cmd:"" help:"List imported pages"`
	Summary SummaryCmd `cmd:"" help:"Print the plain-text summary of a page"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a page with its containers and blocks"`
	APIKey  APIKeyCmd  `cmd:"" name:"apikey" help:"Read or write the API key of a block's range"`
	File    FileCmd    `cmd:"" help:"Manage files referenced by document blocks"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about a page"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path string `arg:"" help:"Path to a page JSON file" type:"existingfile"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Range  string `short:"r" help:"Only list pages of this range"`
	Limit  int    `short:"n" help:"Maximum number of pages to list"`
	Offset int    `help:"Number of pages to skip"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	PageID   string `arg:"" help:"Page ID"`
	Markdown bool   `short:"m" help:"Render fragments as Markdown instead of stripping markup"`
	Stats    bool   `short:"s" help:"Print summary size and hash to stderr"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	PageID string `arg:"" help:"Page ID"`
	Force  bool   `help:"Confirm deletion"`
}

// APIKeyCmd groups the "apikey" subcommands.
type APIKeyCmd struct {
	Get APIKeyGetCmd `cmd:"" help:"Print the API key of the block's range"`
	Set APIKeySetCmd `cmd:"" help:"Store the API key for the block's range"`
}

// APIKeyGetCmd is the "apikey get" subcommand.
type APIKeyGetCmd struct {
	BlockID string `arg:"" help:"Block ID"`
}

// APIKeySetCmd is the "apikey set" subcommand.
type APIKeySetCmd struct {
	BlockID string `arg:"" help:"Block ID"`
	Value   string `arg:"" help:"API key"`
}

// FileCmd groups the "file" subcommands.
type FileCmd struct {
	Add FileAddCmd `cmd:"" help:"Copy a file into the file store and print its ID"`
}

// FileAddCmd is the "file add" subcommand.
type FileAddCmd struct {
	Path string `arg:"" help:"Path to the file" type:"existingfile"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	PageID   string `arg:"" help:"Page ID"`
	Question string `arg:"" help:"Question to ask about the page"`
	APIKey   string `name:"api-key" env:"GEMINI_API_KEY" help:"API key used when the page's range has none"`
}
