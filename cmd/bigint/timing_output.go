package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint/internal/observ"
)

// newTimer returns a Timer when --timings is set, nil otherwise. A nil Timer
// ignores every call.
func newTimer(cmd *cobra.Command) *observ.Timer {
	enabled, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !enabled {
		return nil
	}
	return observ.NewTimer()
}

// printTimings writes the phase table to stderr so stdout stays parseable.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
