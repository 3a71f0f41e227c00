// Package trace records spans and point events for bigint commands.
//
// Enable tracing via command-line flags:
//
//	bigint batch --trace=- --trace-level=detail exprs.txt
//
// Implementations:
//
//   - Nop: no-op tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans out to several tracers
//
// Levels gate scopes: phase emits command events, detail adds batch
// events, debug adds one span per evaluated operation.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeOp, "eval", parentID)
//	defer span.End("")
package trace
