package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	filter := cwsummary.PageFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Range != "" {
		filter.RangeID = &c.Range
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'cwsummary import' to add one.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.ID, p.RangeID, p.Title)
	}

	return nil
}
