// Package trace records levelled begin/end/point events for analysis runs.
//
// A Tracer travels through the call chain in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "analyze:"+path, 0)
//	defer span.End("")
//
// Levels gate scopes: phase shows runs, detail adds files and chunks,
// debug adds everything. StreamTracer writes text or NDJSON as events
// happen; RingTracer keeps the last N events for a post-mortem dump.
package trace
