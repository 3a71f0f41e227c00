package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"bigint/internal/expr"
)

var errorColor = color.New(color.FgRed)

// Format selects how outcomes are written.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMsgpack:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown batch format %q (want text|json|msgpack)", s)
	}
}

// Record is the serialized shape of an Outcome.
type Record struct {
	Line   int          `json:"line" msgpack:"line"`
	Expr   string       `json:"expr" msgpack:"expr"`
	Result *expr.Result `json:"result,omitempty" msgpack:"result,omitempty"`
	Error  string       `json:"error,omitempty" msgpack:"error,omitempty"`
}

// NewRecord converts an outcome. Failed lines keep their raw text.
func NewRecord(o Outcome) Record {
	rec := Record{Line: o.Line}
	if o.Err != nil {
		rec.Expr = o.Text
		rec.Error = o.Err.Error()
		return rec
	}
	rec.Expr = o.Expr.String()
	res := o.Result
	rec.Result = &res
	return rec
}

// Write renders outcomes to w.
func Write(w io.Writer, outcomes []Outcome, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		// Comparison operators must stay readable.
		enc.SetEscapeHTML(false)
		for _, o := range outcomes {
			if err := enc.Encode(NewRecord(o)); err != nil {
				return err
			}
		}
		return nil
	case FormatMsgpack:
		records := make([]Record, len(outcomes))
		for i, o := range outcomes {
			records[i] = NewRecord(o)
		}
		return msgpack.NewEncoder(w).Encode(records)
	default:
		for _, o := range outcomes {
			var err error
			if o.Err != nil {
				_, err = errorColor.Fprintf(w, "line %d: %s: %v\n", o.Line, o.Text, o.Err)
			} else {
				_, err = fmt.Fprintf(w, "%s = %s\n", o.Expr, o.Result)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
