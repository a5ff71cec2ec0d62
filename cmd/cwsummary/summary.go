package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
	"github.com/fwojciec/cwsummary/summary"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByID(deps.Ctx, c.PageID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	builder := *deps.Summaries
	if c.Markdown {
		builder.Converter = deps.Markdown
	}

	text, err := builder.BuildSummary(deps.Ctx, page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	if c.Stats {
		fmt.Fprintf(deps.Stderr, "%s  %d blocks  %s\n",
			summary.FormatBytes(len(text)), len(page.Blocks()), summary.ComputeHash(text))
	}
	return nil
}
