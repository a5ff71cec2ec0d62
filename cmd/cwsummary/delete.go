package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return cwsummary.Errorf(cwsummary.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Pages.DeletePage(deps.Ctx, c.PageID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %s\n", c.PageID)
	return nil
}
