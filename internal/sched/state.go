package sched

import (
	"io"
	"os"

	"go.uber.org/atomic"
)

// Allocator is the lifecycle module's collaborator for goroutine
// allocation, kept as a narrow interface so the core never hard-codes
// `new`/`free` and a host can plug in a pooling allocator without
// touching scheduling logic (spec.md §1 names allocator selection as an
// external collaborator). The default allocator (see NewDefaultAllocator)
// just uses the garbage collector.
type Allocator interface {
	// Alloc returns a new zero-value goroutine shell.
	Alloc() *G
	// Free releases a goroutine that has reached GDone. The default
	// allocator is a no-op here; it exists for a pooling allocator to
	// override.
	Free(g *G)
}

type defaultAllocator struct{}

func (defaultAllocator) Alloc() *G { return &G{} }
func (defaultAllocator) Free(*G)   {}

// NewDefaultAllocator returns the GC-backed Allocator used when a host
// does not supply its own.
func NewDefaultAllocator() Allocator { return defaultAllocator{} }

// SchedulerStats is a read-only snapshot of dispatch-loop counters,
// suitable for printing a termination summary. It adds no new scheduling
// decision; every field is a direct readout of a counter the dispatch
// loop already maintains.
type SchedulerStats struct {
	Ticks            uint64
	Rounds           uint64
	Dispatched       uint64
	StealAttempts    uint64
	StealSuccesses   uint64
	NPidle           int
	GlobalQueueSize  int
	GoroutinesLive   int64
}

// Scheduler is the root of all scheduler state: the processor array, the
// global run queue, the idle-processor stack, the goroutine-id generator,
// the logical tick timeline, the timer list, the allocator, and the debug
// switch. It is constructed once via Init and torn down once via Deinit.
type Scheduler struct {
	procs []*P
	global *GlobalQueue
	idle   *pidle
	timers *timerList

	goidgen atomic.Uint64
	ticks   atomic.Uint64

	preemptPeriod   uint64
	nextPreemptTick uint64

	// rrCursor is the round-robin cursor used by NewprocAuto. spec.md §9
	// notes this must move into per-context state (or become atomic) for
	// any future multi-context variant; today it is touched only by the
	// single dispatch-loop goroutine.
	rrCursor int

	mainStarted bool

	alloc Allocator
	debug bool
	trc   Tracer

	// stats mirrors SchedulerStats; it is updated in place by the
	// dispatch loop and the stealer.
	stealAttempts  atomic.Uint64
	stealSuccesses atomic.Uint64
	dispatched     atomic.Uint64
	rounds         atomic.Uint64
	goroutinesLive atomic.Int64
}

// Init constructs a Scheduler with n processors (n must be in [1, 64];
// spec.md §6). The allocator and debug switch are the two external inputs
// spec.md §1 calls out as the core's only dependencies beyond the
// processor count and the task list.
func Init(n int, alloc Allocator, debug bool) *Scheduler {
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	if alloc == nil {
		alloc = NewDefaultAllocator()
	}
	var traceOut io.Writer
	if debug {
		traceOut = os.Stdout
	}
	s := &Scheduler{
		global:        newGlobalQueue(),
		idle:          newPidle(),
		timers:        newTimerList(),
		preemptPeriod: DefaultPreemptPeriod,
		alloc:         alloc,
		debug:         debug,
		trc:           NewWriterTracer(traceOut),
	}
	s.nextPreemptTick = s.preemptPeriod
	s.procs = make([]*P, n)
	for i := 0; i < n; i++ {
		s.procs[i] = newP(i)
	}
	return s
}

// SetTracer overrides the scheduler's debug-trace sink. The default
// tracer discards output unless debug mode is on, in which case it writes
// to os.Stdout; callers that want to capture the trace (e.g. scenario
// tests) should call this before Schedule.
func (s *Scheduler) SetTracer(t Tracer) {
	if t == nil {
		t = NewWriterTracer(nil)
	}
	s.trc = t
}

// Processors returns the scheduler's fixed processor array.
func (s *Scheduler) Processors() []*P { return s.procs }

// Debug reports whether the scheduler is running in debug mode.
func (s *Scheduler) Debug() bool { return s.debug }

// Ticks returns the current value of the logical tick counter.
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

// GlobalQueue returns the scheduler's shared global run queue.
func (s *Scheduler) GlobalQueue() *GlobalQueue { return s.global }

// Stats returns a snapshot of the dispatch loop's counters.
func (s *Scheduler) Stats() SchedulerStats {
	return SchedulerStats{
		Ticks:           s.ticks.Load(),
		Rounds:          s.rounds.Load(),
		Dispatched:      s.dispatched.Load(),
		StealAttempts:   s.stealAttempts.Load(),
		StealSuccesses:  s.stealSuccesses.Load(),
		NPidle:          s.NPidle(),
		GlobalQueueSize: s.global.Size(),
		GoroutinesLive:  s.goroutinesLive.Load(),
	}
}

// Deinit destroys every goroutine still reachable from any holder
// (runnext slots, local queues, the global queue, and the timer list) and
// releases the processor array. Every holder is emptied as it is walked,
// so a second call finds nothing left to destroy and is a no-op.
func (s *Scheduler) Deinit() {
	for _, p := range s.procs {
		if g := p.RunnextClear(); g != nil {
			s.destroyproc(g)
		}
		for {
			g, err := p.localq.Dequeue()
			if err != nil {
				break
			}
			s.destroyproc(g)
		}
	}
	for {
		g, ok := s.global.Dequeue()
		if !ok {
			break
		}
		s.destroyproc(g)
	}
	for _, te := range s.timers.drain() {
		s.destroyproc(te.g)
	}
	s.procs = nil
}
