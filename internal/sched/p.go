package sched

// PStatus is the scheduling status of a processor.
type PStatus int

const (
	// PIdle marks a processor with no work that has not yet been parked.
	PIdle PStatus = iota
	// PRunning marks a processor actively being considered for dispatch
	// (it may or may not have work right now; see (*P).SyncStatus).
	PRunning
	// PParked marks a processor sitting on the idle stack with no work.
	PParked
)

func (s PStatus) String() string {
	switch s {
	case PIdle:
		return "idle"
	case PRunning:
		return "running"
	case PParked:
		return "parked"
	default:
		return "unknown"
	}
}

// P is a logical processor: a fast-path single slot (runnext), a bounded
// local run queue, a status, and an intrusive link used for idle-stack
// membership.
//
// Invariants (spec.md §3):
//   - I-P1: a P is on the idle stack iff its status is PParked.
//   - I-P2: while PParked, the P has no runnable work.
//   - I-P3: status transitions Running<->Idle via SyncStatus, which only
//     ever demotes Running to Idle; nothing promotes Idle to Running
//     implicitly.
type P struct {
	id      int
	status  PStatus
	runnext *G
	localq  *LocalQueue

	// idleLink chains this P into the pidle LIFO stack.
	idleLink *P
}

func newP(id int) *P {
	return &P{id: id, status: PIdle, localq: newLocalQueue()}
}

// ID returns the processor's identity, assigned 0..N-1 at initialization.
func (p *P) ID() int { return p.id }

// Status returns the processor's current scheduling status.
func (p *P) Status() PStatus { return p.status }

// SetStatus sets the processor's scheduling status directly. Most callers
// should prefer SyncStatus or the pidle park/wake operations, which
// maintain the I-P1/I-P2 invariants; SetStatus is the low-level primitive
// those build on.
func (p *P) SetStatus(s PStatus) { p.status = s }

// LocalQueue returns the processor's bounded local run queue.
func (p *P) LocalQueue() *LocalQueue { return p.localq }

// RunnextGet returns the goroutine currently installed in the runnext
// slot, or nil.
func (p *P) RunnextGet() *G { return p.runnext }

// RunnextSet installs g into the runnext slot, overwriting whatever was
// there. Callers that need to preserve a previous occupant must read it
// with RunnextGet first.
func (p *P) RunnextSet(g *G) { p.runnext = g }

// RunnextClear empties the runnext slot and returns its previous occupant,
// or nil if it was already empty.
func (p *P) RunnextClear() *G {
	g := p.runnext
	p.runnext = nil
	return g
}

// RunnextHas reports whether the runnext slot is occupied.
func (p *P) RunnextHas() bool { return p.runnext != nil }

// HasWork reports whether the processor has anything runnable: an
// occupied runnext slot or a non-empty local queue.
func (p *P) HasWork() bool {
	return p.RunnextHas() || !p.localq.Empty()
}

// TotalGoroutines returns the number of goroutines currently owned by this
// processor: its local queue size, plus one if runnext is occupied.
func (p *P) TotalGoroutines() int {
	n := p.localq.Size()
	if p.RunnextHas() {
		n++
	}
	return n
}

// PreviewLocalNext returns, without consuming it, the goroutine that would
// be returned by the next Runqget: the runnext occupant if present,
// otherwise the local queue's front. MaybePreemptPass picks its candidate
// in the same order, reading runnext and the queue front directly.
func (p *P) PreviewLocalNext() *G {
	if p.runnext != nil {
		return p.runnext
	}
	return p.localq.Front()
}

// SyncStatus demotes a PRunning processor with no work to PIdle. It never
// touches a PParked processor and never promotes PIdle to PRunning; only
// the runner (ExecuteGoroutine) and PidleGet make a processor PRunning
// (spec.md §4.2, I-P3).
func (p *P) SyncStatus() {
	if p.status == PRunning && !p.HasWork() {
		p.status = PIdle
	}
}
