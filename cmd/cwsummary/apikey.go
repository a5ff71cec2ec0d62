package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
)

// Run executes the apikey get command.
func (c *APIKeyGetCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByBlockID(deps.Ctx, c.BlockID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	key, ok, err := cwsummary.APIKey(deps.Ctx, deps.Config, page.RangeID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no API key set for range %q. Use 'cwsummary apikey set' to store one.\n", page.RangeID)
		return cwsummary.Errorf(cwsummary.ENOTFOUND, "no API key set for range %q", page.RangeID)
	}

	fmt.Fprintln(deps.Stdout, key)
	return nil
}

// Run executes the apikey set command.
func (c *APIKeySetCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByBlockID(deps.Ctx, c.BlockID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	if err := cwsummary.StoreAPIKey(deps.Ctx, deps.Config, page.RangeID, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored API key for range %q\n", page.RangeID)
	return nil
}
