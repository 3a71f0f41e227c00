package batch

import (
	"time"

	"bigint/internal/expr"
)

// Status captures progress state of one line.
type Status string

const (
	// StatusQueued indicates the line is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the line is being evaluated.
	StatusWorking Status = "working"
	// StatusDone indicates the line evaluated successfully.
	StatusDone Status = "done"
	// StatusError indicates the line failed to parse or evaluate.
	StatusError Status = "error"
)

// Event reports progress for a single line.
type Event struct {
	Line    int
	Index   int
	Text    string
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must be safe for
// concurrent use.
type Sink interface {
	OnEvent(Event)
}

// Options tunes Run.
type Options struct {
	// Jobs caps concurrent evaluations; <= 0 means GOMAXPROCS.
	Jobs int
	// FailFast stops at the first failing line and returns its error.
	FailFast bool
	Sink     Sink
}

// Outcome is the result of one evaluated line.
type Outcome struct {
	// Line is the 1-based line number in the input.
	Line    int
	Text    string
	Expr    expr.Expr
	Result  expr.Result
	Err     error
	Elapsed time.Duration
}

// OK reports whether the line evaluated without error.
func (o Outcome) OK() bool { return o.Err == nil }
