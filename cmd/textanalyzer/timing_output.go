package main

import (
	"fmt"
	"io"

	"textanalyzer/internal/observ"
)

// printTimings writes the phase summary; write errors are ignored like the
// rest of stderr output.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
