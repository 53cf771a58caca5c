package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textanalyzer/internal/trace"
)

// tracing owns the tracer of one invocation.
type tracing struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	ring      *trace.RingTracer // только в режиме ring
	ringOut   string
	format    trace.Format
	errOut    io.Writer
}

// setupTracing inspects trace-related flags and initializes the tracer.
// The tracer is attached to the command context.
func setupTracing(cmd *cobra.Command) (*tracing, error) {
	root := cmd.Root()

	// Read trace configuration from flags
	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}

	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	heartbeatInterval, err := root.PersistentFlags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	// Parse level
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	// If level is off and no output specified, skip tracing
	if level == trace.LevelOff && traceOutput == "" {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return &tracing{tracer: trace.Nop}, nil
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff {
		level = trace.LevelPhase
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	}
	if traceOutput == "" || traceOutput == "-" {
		cfg.Output = nopCloser{cmd.ErrOrStderr()}
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	t := &tracing{tracer: tracer, ringOut: traceOutput, format: format, errOut: cmd.ErrOrStderr()}
	if ring, ok := tracer.(*trace.RingTracer); ok {
		t.ring = ring
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	// Start heartbeat if configured
	if heartbeatInterval > 0 {
		t.heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}
	return t, nil
}

// dumpRing writes the ring buffer to the trace output; stream modes have
// written everything already.
func (t *tracing) dumpRing() {
	if t.ring == nil {
		return
	}
	var w io.Writer = t.errOut
	if t.ringOut != "" && t.ringOut != "-" {
		f, err := os.Create(t.ringOut)
		if err != nil {
			fmt.Fprintf(t.errOut, "trace: %v\n", err)
			return
		}
		defer f.Close()
		w = f
	}
	format := t.format
	if format == trace.FormatAuto {
		format = trace.FormatText
		if strings.HasSuffix(t.ringOut, ".ndjson") {
			format = trace.FormatNDJSON
		}
	}
	if err := t.ring.Dump(w, format); err != nil {
		fmt.Fprintf(t.errOut, "trace: dump error: %v\n", err)
	}
	t.ring = nil
}

func (t *tracing) close() {
	// Stop heartbeat first
	t.heartbeat.Stop()
	t.dumpRing()

	if err := t.tracer.Flush(); err != nil {
		fmt.Fprintf(t.errOut, "trace: flush error: %v\n", err)
	}
	if err := t.tracer.Close(); err != nil {
		fmt.Fprintf(t.errOut, "trace: close error: %v\n", err)
	}
}

// nopCloser keeps the tracer from closing stderr.
type nopCloser struct{ io.Writer }
