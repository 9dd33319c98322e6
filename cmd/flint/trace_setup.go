package main

import (
	"fmt"
	"io"
	"os"

	"flint/internal/trace"
)

// tracing is the tracer of one command run.
type tracing struct {
	tracer trace.Tracer
	ring   *trace.RingTracer // set in ring and both modes
	format trace.Format
	output string
	errOut io.Writer
}

// setupTracing creates the tracer described by s.
func setupTracing(s settings, errOut io.Writer) (*tracing, error) {
	t := &tracing{tracer: trace.Nop, output: s.config.Trace.Output, errOut: errOut}
	level, err := trace.ParseLevel(s.config.Trace.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		return t, nil
	}
	mode, err := trace.ParseMode(s.config.Trace.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	if t.format, err = trace.ParseFormat(s.config.Trace.Format); err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     t.format,
		OutputPath: t.output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	t.tracer = tracer
	if ring, ok := tracer.(*trace.RingTracer); ok {
		t.ring = ring
	}
	return t, nil
}

// finish flushes and closes the tracer. The ring is written out only when
// the run failed: to the trace output in ring mode, to errOut in both mode
// unless the stream already goes there.
func (t *tracing) finish(failed bool) {
	if t.ring != nil && failed {
		if err := t.dumpRing(); err != nil {
			fmt.Fprintf(t.errOut, "trace: dump error: %v\n", err)
		}
	}
	if err := t.tracer.Flush(); err != nil {
		fmt.Fprintf(t.errOut, "trace: flush error: %v\n", err)
	}
	if err := t.tracer.Close(); err != nil {
		fmt.Fprintf(t.errOut, "trace: close error: %v\n", err)
	}
}

func (t *tracing) dumpRing() (err error) {
	toErr := t.output == "" || t.output == "-"
	if t.ring.Streams() {
		if toErr {
			return nil
		}
		return t.ring.Dump(t.errOut, t.format)
	}
	if toErr {
		return t.ring.Dump(t.errOut, t.format)
	}
	f, err := os.Create(t.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return t.ring.Dump(f, t.format)
}
