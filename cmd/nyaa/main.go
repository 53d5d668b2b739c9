package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nyaa"
	"github.com/fwojciec/nyaa/crawl"
	"github.com/fwojciec/nyaa/fs"
	"github.com/fwojciec/nyaa/goquery"
	nyaahttp "github.com/fwojciec/nyaa/http"
	nyaaslog "github.com/fwojciec/nyaa/slog"
	"github.com/fwojciec/nyaa/sqlite"
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
	// Fetcher replaces the HTTP fetcher when set. Set before calling Run().
	Fetcher nyaa.Fetcher

	// SQLite database used by the history service, if one was requested.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nyaa"),
		kong.Description("Scrape nyaa.si listings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nyaa --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger
	deps.Parser = nyaaslog.NewLoggingParser(
		goquery.NewParser(goquery.WithConcurrency(runtime.GOMAXPROCS(0))),
		logger,
	)

	// Wire command-specific dependencies based on command
	switch strings.Fields(kongCtx.Command())[0] {
	case "search":
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = nyaahttp.NewFetcher(nyaahttp.WithTimeout(cli.Search.Timeout))
		}
		if cli.Search.Archive != "" {
			fetcher = fs.NewArchivingFetcher(fetcher, cli.Search.Archive)
		}
		deps.Fetcher = nyaaslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

		deps.Limiter = crawl.NewHostLimiter(cli.Search.Rate)

		if cli.Search.DB != "" {
			if err := m.openDB(deps, cli.Search.DB); err != nil {
				return err
			}
			defer m.Close()
		}

	case "history":
		if err := m.openDB(deps, cli.History.DB); err != nil {
			return err
		}
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(deps *Dependencies, path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set NYAA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Entries = nyaaslog.NewLoggingEntryService(sqlite.NewEntryService(m.DB), deps.Logger)
	return nil
}
