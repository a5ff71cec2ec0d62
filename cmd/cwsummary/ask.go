package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByID(deps.Ctx, c.PageID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	apiKey, ok, err := cwsummary.APIKey(deps.Ctx, deps.Config, page.RangeID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}
	if !ok {
		apiKey = c.APIKey
	}
	if apiKey == "" {
		fmt.Fprintf(deps.Stderr, "error: no API key for range %q. Use 'cwsummary apikey set' or set GEMINI_API_KEY.\n", page.RangeID)
		return cwsummary.Errorf(cwsummary.EINVALID, "no API key for range %q", page.RangeID)
	}

	text, err := deps.Summaries.BuildSummary(deps.Ctx, page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	asker, err := deps.NewAsker(deps.Ctx, apiKey)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check the API key stored for the range is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	answer, err := asker.Ask(deps.Ctx, text, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
