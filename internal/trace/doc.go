// Package trace provides the tracing subsystem of the Flint front end.
//
// Tracing is the project's logging layer: the driver opens spans around
// compilation phases (parse, check, import:<path>) and the checker emits
// point events for specializations.
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events (imports, specializations)
//   - LevelDebug: Everything
//
// # Usage
//
//	t, err := trace.New(trace.Config{Level: trace.LevelPhase, Mode: trace.ModeStream})
//	ctx = trace.WithTracer(ctx, t)
//
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
