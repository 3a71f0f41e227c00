// Package batch evaluates many expression lines concurrently while keeping
// results in input order.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"bigint/internal/expr"
	"bigint/internal/trace"
)

// Task is a non-blank, non-comment input line.
type Task struct {
	Line int
	Text string
}

// Tasks selects the lines worth evaluating. Blank lines and lines whose
// first non-space character is '#' are dropped.
func Tasks(lines []string) []Task {
	tasks := make([]Task, 0, len(lines))
	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tasks = append(tasks, Task{Line: i + 1, Text: text})
	}
	return tasks
}

// Run evaluates lines and returns one Outcome per task, in input order.
// Per-line failures are stored in Outcome.Err. With FailFast the first
// failure cancels the remaining work and is returned; outcomes that never
// ran are left with a nil Result and a context error.
func Run(ctx context.Context, lines []string, opts Options) ([]Outcome, error) {
	tasks := Tasks(lines)
	outcomes := make([]Outcome, len(tasks))
	if len(tasks) == 0 {
		return outcomes, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeBatch, "batch", trace.CurrentSpan(ctx))
	span.WithExtra("lines", strconv.Itoa(len(tasks))).WithExtra("jobs", strconv.Itoa(jobs))
	ctx = trace.WithSpan(ctx, span)

	for i, task := range tasks {
		outcomes[i] = Outcome{Line: task.Line, Text: task.Text}
		emit(opts.Sink, Event{Line: task.Line, Index: i, Text: task.Text, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(tasks)))

	for i, task := range tasks {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				outcomes[i].Err = gctx.Err()
				return nil
			default:
			}

			emit(opts.Sink, Event{Line: task.Line, Index: i, Text: task.Text, Status: StatusWorking})
			start := time.Now()
			e, res, err := expr.Evaluate(gctx, task.Text)
			elapsed := time.Since(start)

			// Indices are unique per goroutine, no lock needed.
			outcomes[i].Expr = e
			outcomes[i].Result = res
			outcomes[i].Err = err
			outcomes[i].Elapsed = elapsed

			status := StatusDone
			if err != nil {
				status = StatusError
			}
			emit(opts.Sink, Event{Line: task.Line, Index: i, Text: task.Text, Status: status, Err: err, Elapsed: elapsed})

			if err != nil && opts.FailFast {
				return fmt.Errorf("line %d: %w", task.Line, err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// Parent cancellation without FailFast.
		err = ctx.Err()
	}
	if err != nil {
		span.Fail(err)
		return outcomes, err
	}
	span.End(fmt.Sprintf("%d failed", Failed(outcomes)))
	return outcomes, nil
}

// Failed counts outcomes carrying an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
