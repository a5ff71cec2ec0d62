package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/cwsummary"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var page cwsummary.Page
	if err := json.Unmarshal(data, &page); err != nil {
		err = cwsummary.Errorf(cwsummary.EINVALID, "invalid page JSON in %q: %s", c.Path, err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	if err := deps.Pages.CreatePage(deps.Ctx, &page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported page %s %q\n", page.ID, page.Title)
	for _, b := range page.Blocks() {
		fmt.Fprintf(deps.Stdout, "  block %s  %s\n", b.ID, b.Type)
	}
	return nil
}
