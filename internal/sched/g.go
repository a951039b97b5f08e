package sched

// GStatus is the lifecycle status of a goroutine.
type GStatus int

const (
	// GReady marks a goroutine that has not yet run to completion and is
	// sitting in some queue or slot, waiting to be dispatched.
	GReady GStatus = iota
	// GRunning marks a goroutine whose task is currently executing.
	GRunning
	// GDone marks a goroutine that has finished (or was malformed and
	// never ran); it is destroyed immediately after reaching this state.
	GDone
)

func (s GStatus) String() string {
	switch s {
	case GReady:
		return "ready"
	case GRunning:
		return "running"
	case GDone:
		return "done"
	default:
		return "unknown"
	}
}

// YieldReason records why a goroutine's last dispatch slice ended without
// completing the task.
type YieldReason int

const (
	// YieldUnknown is the zero value: the goroutine has never yielded.
	YieldUnknown YieldReason = iota
	// YieldTimeSlice marks a yield forced by exhausting a time slice.
	// Reserved for a future variant; this scheduler has no slices shorter
	// than "run the task to completion," so it is never produced today.
	YieldTimeSlice
	// YieldPreempt marks a yield caused by the preemption pass marking the
	// goroutine and the runner's safepoint consuming that request.
	YieldPreempt
	// YieldSyscall marks a yield caused by a blocking syscall. Reserved;
	// blocking syscalls are out of scope (spec.md Non-goals).
	YieldSyscall
	// YieldIO marks a yield caused by blocking I/O. Reserved; network and
	// file I/O integration are out of scope (spec.md Non-goals).
	YieldIO
)

func (r YieldReason) String() string {
	switch r {
	case YieldTimeSlice:
		return "time-slice"
	case YieldPreempt:
		return "preempt"
	case YieldSyscall:
		return "syscall"
	case YieldIO:
		return "io"
	default:
		return "unknown"
	}
}

// G is a goroutine: an execution unit with an identity, a status, an
// optional task, and the scheduling metadata the rest of the package uses
// to chain and preempt it.
//
// Invariants (spec.md §3):
//   - I-G1: a G occupies at most one queue position at any time.
//   - I-G2: link is non-nil only while the G is chained in the global
//     queue or mid-transfer in a batch.
//   - I-G3: a G with status GRunning is referenced only by the currently
//     executing dispatch frame.
type G struct {
	id     uint64
	task   func()
	status GStatus

	// link chains this G into the global run queue or a detached transfer
	// batch. It is the sole intrusive field: no wrapper node is allocated
	// to chain G's (spec.md §9 rejects the node-wrapper deque explicitly).
	link *G

	preemptRequested bool
	lastYieldReason  YieldReason
}

func newG(id uint64, task func()) *G {
	return &G{id: id, task: task, status: GReady}
}

// ID returns the goroutine's monotonically assigned identity.
func (g *G) ID() uint64 { return g.id }

// Status returns the goroutine's current lifecycle status.
func (g *G) Status() GStatus { return g.status }

// SetStatus sets the goroutine's lifecycle status.
func (g *G) SetStatus(s GStatus) { g.status = s }

// Task returns the goroutine's callable, or nil if it was never given one.
func (g *G) Task() func() { return g.task }

// Link returns the intrusive scheduling-link field.
func (g *G) Link() *G { return g.link }

// SetLink sets the intrusive scheduling-link field.
func (g *G) SetLink(next *G) { g.link = next }

// RequestPreempt marks the goroutine for preemption at its next safepoint.
// It is idempotent: marking an already-marked goroutine has no effect.
func (g *G) RequestPreempt() { g.preemptRequested = true }

// PreemptRequested reports whether a preempt request is pending, without
// consuming it.
func (g *G) PreemptRequested() bool { return g.preemptRequested }

// ConsumePreempt returns true iff a preempt request was pending, clearing
// it and recording YieldPreempt as the last yield reason. If no request was
// pending it returns false and leaves the goroutine untouched.
func (g *G) ConsumePreempt() bool {
	if !g.preemptRequested {
		return false
	}
	g.preemptRequested = false
	g.lastYieldReason = YieldPreempt
	return true
}

// LastYieldReason returns the reason recorded for the goroutine's most
// recent yield, or YieldUnknown if it has never yielded.
func (g *G) LastYieldReason() YieldReason { return g.lastYieldReason }

// IsExecutionReady reports whether the goroutine is eligible to have its
// task invoked: status must be GReady and a task must be present. A G with
// no task is malformed and is routed directly to GDone without running.
func (g *G) IsExecutionReady() bool {
	return g.status == GReady && g.task != nil
}
