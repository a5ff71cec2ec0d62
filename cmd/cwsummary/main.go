package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cwsummary"
	"github.com/fwojciec/cwsummary/fs"
	"github.com/fwojciec/cwsummary/gemini"
	"github.com/fwojciec/cwsummary/htmltomarkdown"
	"github.com/fwojciec/cwsummary/pdf"
	cwslog "github.com/fwojciec/cwsummary/slog"
	"github.com/fwojciec/cwsummary/sqlite"
	"github.com/fwojciec/cwsummary/summary"
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
	// Database path. Set before calling Run().
	DBPath string

	// Directory of the host file store. Set before calling Run().
	FilesDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultPath("CWSUMMARY_DB", "cwsummary.db"),
		FilesDir: defaultPath("CWSUMMARY_FILES", "files"),
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cwsummary"),
		kong.Description("Summarize courseware pages and manage range API keys."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cwsummary --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CWSUMMARY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	var (
		config    cwsummary.ConfigStore   = sqlite.NewConfigStore(m.DB)
		fileStore                         = fs.NewFileService(m.FilesDir)
		files     cwsummary.FileService   = fileStore
		extractor cwsummary.TextExtractor = pdf.NewExtractor()
		logger    *slog.Logger
	)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		config = cwslog.NewLoggingConfigStore(config, logger)
		files = cwslog.NewLoggingFileService(files, logger)
		extractor = cwslog.NewLoggingTextExtractor(extractor, logger)
	}

	deps.DB = m.DB
	deps.Pages = sqlite.NewPageService(m.DB)
	deps.Config = config
	deps.Importer = fileStore
	deps.Summaries = &summary.Builder{Files: files, Extractor: extractor}
	deps.Markdown = htmltomarkdown.NewConverter()
	deps.NewAsker = func(ctx context.Context, apiKey string) (cwsummary.Asker, error) {
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		var asker cwsummary.Asker = gemini.NewAsker(client, defaultModel)
		if logger != nil {
			asker = cwslog.NewLoggingAsker(asker, logger)
		}
		return asker, nil
	}

	return kongCtx.Run(deps)
}

const defaultModel = gemini.DefaultModel

// defaultPath returns the value of the environment variable env, or name
// inside ~/.cwsummary when unset.
func defaultPath(env, name string) string {
	if path := os.Getenv(env); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(home, ".cwsummary")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, name)
}
