package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/nyaa"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	fields, err := c.Output.fields()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyaa.ErrorMessage(err))
		return err
	}

	html, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	results, err := deps.Parser.Parse(string(html), c.URL)
	if err != nil {
		return c.Output.fail(deps, err)
	}

	return c.Output.write(deps.Stdout, results, fields)
}
