package sched

import (
	"fmt"
	"io"
)

// Tracer is the sink for the debug text interface (spec.md §6): one line
// per call, no framework formatting. The core depends only on this narrow
// interface, never on a logging package directly, so the exact-text
// contract the snapshot tests rely on cannot be disturbed by how a host
// chooses to configure its own ambient logging.
type Tracer interface {
	Trace(line string)
}

// writerTracer writes each traced line followed by a newline to an
// underlying io.Writer. A nil writer makes it a silent discard tracer,
// which is the default for a non-debug scheduler.
type writerTracer struct {
	w io.Writer
}

// NewWriterTracer returns a Tracer that writes to w, or discards silently
// if w is nil.
func NewWriterTracer(w io.Writer) Tracer {
	return &writerTracer{w: w}
}

func (t *writerTracer) Trace(line string) {
	if t.w == nil {
		return
	}
	fmt.Fprintln(t.w, line)
}

// CollectingTracer accumulates every traced line in memory, in order. It
// is used by scenario tests and by the CLI's --print-trace flag.
type CollectingTracer struct {
	Lines []string
}

// NewCollectingTracer returns an empty CollectingTracer.
func NewCollectingTracer() *CollectingTracer {
	return &CollectingTracer{}
}

func (t *CollectingTracer) Trace(line string) {
	t.Lines = append(t.Lines, line)
}

// trace formats and emits a debug-trace line if the scheduler is in debug
// mode; it is a no-op otherwise, so callers never need to guard on Debug()
// themselves.
func (s *Scheduler) trace(format string, args ...any) {
	if !s.debug || s.trc == nil {
		return
	}
	s.trc.Trace(fmt.Sprintf(format, args...))
}
