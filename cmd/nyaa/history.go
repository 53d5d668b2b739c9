package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/nyaa"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := nyaa.EntryFilter{Limit: c.Limit}
	if c.Name != "" {
		filter.Name = &c.Name
	}
	if c.Kind != "" {
		filter.Kind = &c.Kind
	}

	stored, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyaa.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if stored == nil {
			stored = []*nyaa.StoredEntry{}
		}
		return json.NewEncoder(deps.Stdout).Encode(stored)
	}

	if len(stored) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries recorded. Use 'nyaa search --db' to record some.")
		return nil
	}

	for _, se := range stored {
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s\n\t%s\n",
			se.FirstSeenAt.Local().Format(time.DateTime), se.Entry.Kind, se.Entry.Name, se.Entry.SourceURL)
	}

	return nil
}
