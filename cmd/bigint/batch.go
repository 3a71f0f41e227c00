package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bigint/internal/batch"
)

// maxLineSize bounds one input line; a single operand may be huge.
const maxLineSize = 64 << 20

func (a *app) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Evaluate a file of expressions, one per line",
		Long: `batch evaluates every "<a> <op> <b>" line of a file (or stdin with -)
concurrently and prints the results in input order. Blank lines and lines
starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBatch,
	}
	cmd.Flags().Int("jobs", 0, "max parallel evaluations (0 = config or GOMAXPROCS)")
	cmd.Flags().Bool("fail-fast", false, "stop at the first failing line")
	cmd.Flags().String("format", "", "output format (text|json|msgpack)")
	cmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	opts := batch.Options{Jobs: a.cfg.Batch.Jobs, FailFast: a.cfg.Batch.FailFast}
	formatName := a.cfg.Batch.Format

	if cmd.Flags().Changed("jobs") {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if jobs < 0 {
			return fmt.Errorf("--jobs must be >= 0, got %d", jobs)
		}
		opts.Jobs = jobs
	}
	if cmd.Flags().Changed("fail-fast") {
		failFast, err := cmd.Flags().GetBool("fail-fast")
		if err != nil {
			return fmt.Errorf("failed to get fail-fast flag: %w", err)
		}
		opts.FailFast = failFast
	}
	if cmd.Flags().Changed("format") {
		value, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		formatName = value
	}
	format, err := batch.ParseFormat(formatName)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	idx := timer.Begin("parse")
	lines, err := readLines(cmd.InOrStdin(), args[0])
	timer.End(idx, fmt.Sprintf("%d lines", len(lines)))
	if err != nil {
		return err
	}

	idx = timer.Begin("eval")
	var outcomes []batch.Outcome
	if shouldUseTUI(mode, cmd.OutOrStdout(), format == batch.FormatText) {
		outcomes, err = runBatchWithUI(cmd.Context(), "bigint batch "+filepath.Base(args[0]), lines, opts)
	} else {
		outcomes, err = batch.Run(cmd.Context(), lines, opts)
	}
	timer.End(idx, fmt.Sprintf("%d failed", batch.Failed(outcomes)))
	if err != nil {
		return err
	}

	idx = timer.Begin("render")
	err = batch.Write(cmd.OutOrStdout(), outcomes, format)
	timer.End(idx, string(format))
	if err != nil {
		return err
	}
	if n := batch.Failed(outcomes); n > 0 {
		return fmt.Errorf("%d of %d lines failed", n, len(outcomes))
	}
	return nil
}

// readLines reads path, or stdin when path is "-".
func readLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
