package main

import (
	"fmt"

	"github.com/fwojciec/cwsummary"
)

// Run executes the file add command.
func (c *FileAddCmd) Run(deps *Dependencies) error {
	file, err := deps.Importer.ImportFile(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cwsummary.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s\n", file.ID, file.Name)
	return nil
}
