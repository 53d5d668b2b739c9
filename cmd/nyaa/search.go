package main

import (
	"fmt"

	"github.com/fwojciec/nyaa"
	"github.com/fwojciec/nyaa/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.New && deps.Entries == nil {
		fmt.Fprintln(deps.Stderr, "error: --new requires a history database. Set --db or NYAA_DB.")
		return nyaa.Errorf(nyaa.EINVALID, "--new requires --db")
	}

	fields, err := c.Output.fields()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyaa.ErrorMessage(err))
		return err
	}

	q := nyaa.SearchQuery{
		Source:      nyaa.Source(c.Source),
		Filter:      c.Filter,
		Category:    c.Category,
		Subcategory: c.Subcategory,
		Page:        c.Page,
		Term:        c.Query,
		User:        c.User,
	}
	startURL, err := q.URL()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyaa.ErrorMessage(err))
		return err
	}

	walker := &crawl.Walker{
		Fetcher:  deps.Fetcher,
		Parser:   deps.Parser,
		Limiter:  deps.Limiter,
		MaxPages: c.Pages,
	}
	results, err := walker.Walk(deps.Ctx, startURL)
	if err != nil {
		return c.Output.fail(deps, err)
	}

	if deps.Entries != nil {
		created, err := deps.Entries.CreateEntries(deps.Ctx, results.Entries)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", nyaa.ErrorMessage(err))
			return err
		}
		if c.New {
			results = &nyaa.Results{Entries: created, Pagination: results.Pagination}
		}
	}

	return c.Output.write(deps.Stdout, results, fields)
}
