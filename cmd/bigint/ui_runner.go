package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bigint/internal/batch"
	"bigint/internal/ui"
)

type batchOutcome struct {
	outcomes []batch.Outcome
	err      error
}

// runBatchWithUI evaluates lines in the background while a progress view
// consumes their events. Results are written after the view quits.
func runBatchWithUI(ctx context.Context, title string, lines []string, opts batch.Options) ([]batch.Outcome, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = batch.ChannelSink{Ch: events}
		outcomes, err := batch.Run(ctx, lines, optsCopy)
		outcomeCh <- batchOutcome{outcomes: outcomes, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, batch.Tasks(lines), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// Keep draining so the worker never blocks on a full channel.
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.outcomes, uiErr
	}
	return outcome.outcomes, outcome.err
}
