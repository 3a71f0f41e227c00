package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"bigint/internal/bignum"
	"bigint/internal/trace"
)

var demoLabelColor = color.New(color.FgCyan, color.Bold)

type demoLine struct {
	label string
	value string
}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [a] [b]",
		Short: "Print a, b and the results of every arithmetic operation on them",
		Long: `demo prints a, b, a+b, a-b, a*b, a/b and a%b.
Operands default to the [demo] section of bigint.toml, or 348975 and 123.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			timer := newTimer(cmd)
			defer printTimings(cmd, timer)

			idx := timer.Begin("parse")
			x, y := a.cfg.Demo.A, a.cfg.Demo.B
			var err error
			if len(args) > 0 {
				if x, err = bignum.ParseInt(args[0]); err != nil {
					return fmt.Errorf("a: %w", err)
				}
			}
			if len(args) > 1 {
				if y, err = bignum.ParseInt(args[1]); err != nil {
					return fmt.Errorf("b: %w", err)
				}
			}
			timer.End(idx, "")

			idx = timer.Begin("eval")
			span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeBatch, "demo", trace.CurrentSpan(cmd.Context()))
			lines, evalErr := demoLines(x, y)
			if evalErr != nil {
				span.Fail(evalErr)
			} else {
				span.End("")
			}
			timer.End(idx, "")

			idx = timer.Begin("render")
			defer timer.End(idx, "")
			if err := renderDemo(cmd.OutOrStdout(), lines); err != nil {
				return err
			}
			return evalErr
		},
	}
}

var demoLabels = []string{"a", "b", "sum", "subt", "mult", "div", "mod"}

// demoLines computes every demo line. When the division fails, the lines
// that do not depend on it are still returned along with the error.
func demoLines(x, y bignum.BigInt) ([]demoLine, error) {
	values := []string{
		x.String(),
		y.String(),
		x.Add(y).String(),
		x.Sub(y).String(),
		x.Mul(y).String(),
	}
	q, r, err := x.QuoRem(y)
	if err == nil {
		values = append(values, q.String(), r.String())
	}
	lines := make([]demoLine, len(values))
	for i, v := range values {
		lines[i] = demoLine{label: demoLabels[i], value: v}
	}
	return lines, err
}

func renderDemo(out io.Writer, lines []demoLine) error {
	width := 0
	for _, label := range demoLabels {
		width = max(width, runewidth.StringWidth(label))
	}
	for _, line := range lines {
		label := demoLabelColor.Sprint(runewidth.FillRight(line.label, width))
		if _, err := fmt.Fprintf(out, "%s : %s\n", label, line.value); err != nil {
			return err
		}
	}
	return nil
}
