package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bigint/internal/expr"
)

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a single expression",
		Long: `eval computes a op b, where op is one of + - * / % == != < <= > >=.
The expression may be passed as three arguments or as one quoted string.`,
		Example: `  bigint eval 348975 % 123
  bigint eval -- -7 / 2`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			timer := newTimer(cmd)
			defer printTimings(cmd, timer)

			idx := timer.Begin("eval")
			_, res, err := expr.Evaluate(cmd.Context(), strings.Join(args, " "))
			timer.End(idx, "")
			if err != nil {
				return err
			}

			idx = timer.Begin("render")
			defer timer.End(idx, "")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}
