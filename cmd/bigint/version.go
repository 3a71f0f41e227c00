package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"bigint/internal/version"
)

// buildField is one optional line of build metadata.
type buildField struct {
	key   string
	value string
}

type versionReport struct {
	Tool    string            `json:"tool"`
	Version string            `json:"version"`
	Build   map[string]string `json:"build,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var format string
	var full bool
	fields := map[string]*bool{"commit": new(bool), "message": new(bool), "built": new(bool)}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show bigint version and build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []buildField
			for _, f := range buildFields() {
				if full || *fields[f.key] {
					selected = append(selected, f)
				}
			}
			switch strings.ToLower(format) {
			case "pretty":
				return writeVersionPretty(cmd.OutOrStdout(), selected)
			case "json":
				return writeVersionJSON(cmd.OutOrStdout(), selected)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().BoolVar(fields["commit"], "hash", false, "include git commit hash")
	cmd.Flags().BoolVar(fields["message"], "message", false, "include git commit message")
	cmd.Flags().BoolVar(fields["built"], "date", false, "include build timestamp")
	cmd.Flags().BoolVar(&full, "full", false, "include all build metadata")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

// buildFields lists the metadata in display order; unset values read
// "unknown".
func buildFields() []buildField {
	fields := []buildField{
		{"commit", version.GitCommit},
		{"message", version.GitMessage},
		{"built", version.BuildDate},
	}
	for i := range fields {
		if fields[i].value = strings.TrimSpace(fields[i].value); fields[i].value == "" {
			fields[i].value = "unknown"
		}
	}
	return fields
}

func currentVersion() string {
	if v := strings.TrimSpace(version.Version); v != "" {
		return v
	}
	return "dev"
}

func writeVersionPretty(out io.Writer, fields []buildField) error {
	head := version.Colored()
	if strings.TrimSpace(version.Version) == "" {
		head = currentVersion()
	}
	if _, err := fmt.Fprintf(out, "bigint %s\n", head); err != nil {
		return err
	}
	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f.key))
	}
	for _, f := range fields {
		label := demoLabelColor.Sprint(runewidth.FillRight(f.key, width))
		if _, err := fmt.Fprintf(out, "  %s : %s\n", label, f.value); err != nil {
			return err
		}
	}
	return nil
}

func writeVersionJSON(out io.Writer, fields []buildField) error {
	report := versionReport{Tool: "bigint", Version: currentVersion()}
	if len(fields) > 0 {
		report.Build = make(map[string]string, len(fields))
		for _, f := range fields {
			report.Build[f.key] = f.value
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
