package main

import (
	"fmt"

	"github.com/fwojciec/nyaa"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	source := nyaa.Source(c.Source)
	fmt.Fprintln(deps.Stdout, "Filters:")
	for i, name := range nyaa.Filters {
		fmt.Fprintf(deps.Stdout, "%d - %s\n", i, name)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Categories:")
	fmt.Fprintln(deps.Stdout, nyaa.FormatCategories(source))
	return nil
}
