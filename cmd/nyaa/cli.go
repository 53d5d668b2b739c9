package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/nyaa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Parser  nyaa.Parser
	Fetcher nyaa.Fetcher
	Limiter nyaa.HostLimiter
	// Entries is nil unless a history database was requested.
	Entries nyaa.EntryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and parses to stderr"`

	Search     SearchCmd     `cmd:"" help:"Fetch and print a listing"`
	Parse      ParseCmd      `cmd:"" help:"Parse a saved listing page"`
	History    HistoryCmd    `cmd:"" help:"List entries recorded by search --db"`
	Categories CategoriesCmd `cmd:"" help:"List the categories of a source"`
}

// OutputFlags control how results are printed.
type OutputFlags struct {
	Include []string `short:"i" name:"include" placeholder:"FIELD" help:"Print only this field (repeatable). Ignored with --json. Valid values are name, url, kind, comments, torrent, magnet, size, magnet_size, parsed_size, date, seeders, leechers, downloads, pages, current_page."`
	Number  int      `short:"n" default:"-1" placeholder:"AMOUNT" help:"Only print the AMOUNT most recent entries"`
	JSON    bool     `short:"j" name:"json" help:"Output data as JSON instead"`
}

// fields validates the included field names.
func (o *OutputFlags) fields() (nyaa.Fields, error) {
	return nyaa.NewFields(o.Include)
}

// write prints results in the requested format.
func (o *OutputFlags) write(w io.Writer, r *nyaa.Results, fields nyaa.Fields) error {
	r = r.Latest(o.Number)
	if o.JSON {
		return json.NewEncoder(w).Encode(r)
	}
	_, err := io.WriteString(w, nyaa.FormatResults(r, fields))
	return err
}

// fail returns err. In JSON mode an empty result set is still printed.
func (o *OutputFlags) fail(deps *Dependencies, err error) error {
	if o.JSON {
		_ = json.NewEncoder(deps.Stdout).Encode(nyaa.EmptyResults())
	}
	return err
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source      string        `short:"S" enum:"nyaasi,sukebei" default:"nyaasi" help:"Selects the source (${enum})"`
	Filter      int           `short:"f" default:"2" help:"Filter to apply: 0 is no filter, 1 is no remakes, 2 is trusted only"`
	Category    int           `short:"c" default:"0" help:"Category index, see 'nyaa categories'"`
	Subcategory int           `short:"s" default:"0" help:"Subcategory index, 0 for all"`
	Query       string        `short:"q" help:"Search terms"`
	User        string        `short:"u" help:"Only list uploads of this user"`
	Page        uint64        `short:"p" default:"1" help:"Page to load"`
	Pages       int           `default:"1" help:"Follow pagination for up to this many pages"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Rate        float64       `default:"1" help:"Requests per second per host"`
	DB          string        `env:"NYAA_DB" help:"Record entries in this SQLite history database"`
	New         bool          `help:"Only print entries not recorded before (requires --db)"`
	Archive     string        `env:"NYAA_ARCHIVE" help:"Save fetched pages below this directory"`

	Output OutputFlags `embed:""`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" type:"existingfile" help:"Saved listing page"`
	URL  string `required:"" help:"URL the page was fetched from"`

	Output OutputFlags `embed:""`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB    string `required:"" env:"NYAA_DB" help:"SQLite history database"`
	Name  string `help:"Only entries whose name contains this text"`
	Kind  string `help:"Only entries with this status label (success, danger, warning, default)"`
	Limit int    `default:"20" help:"Maximum number of entries to list"`
	JSON  bool   `short:"j" name:"json" help:"Output data as JSON instead"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	Source string `short:"S" enum:"nyaasi,sukebei" default:"nyaasi" help:"Selects the source (${enum})"`
}
