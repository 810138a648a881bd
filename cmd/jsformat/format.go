package main

import (
	"fmt"

	"github.com/fwojciec/jsformat"
)

// FormatCmd fetches, beautifies and emits a single source document.
type FormatCmd struct {
	Input   string
	Options jsformat.FormatOptions
	Target  jsformat.OutputTarget
}

// Run executes the pipeline. Each step only runs if the previous one
// succeeded, so nothing is written when fetching or formatting fails.
func (c *FormatCmd) Run(deps *Dependencies) error {
	ref := jsformat.Classify(c.Input)

	source, err := deps.Source.Fetch(deps.Ctx, ref)
	if err != nil {
		return err
	}

	formatted, err := deps.Formatter.Format(source, c.Options)
	if err != nil {
		return err
	}

	if c.Target.IsStdout() {
		fmt.Fprintln(deps.Stdout, formatted)
		return nil
	}

	if err := deps.Writer.WriteFile(c.Target.Path, formatted); err != nil {
		return jsformat.Errorf(jsformat.EWRITE, "failed to write file to %s due to %s", c.Target.Path, reportMessage(err))
	}
	return nil
}
