package sched

// preemptInjectionHook is a dispatch-time hook reserved for supplementing
// the preemption pass with additional policies without touching the core
// (spec.md §4.11 step 2). It is currently a no-op; the historical
// "sample every 29th id" debug hint from the source history never became
// load-bearing, so it is not implemented here.
func (s *Scheduler) preemptInjectionHook(p *P, g *G) {}

// ExecuteGoroutine runs one scheduling slice of g on p: it marks p
// running, executes the slice (which either finishes the goroutine's task
// or yields it back at the safepoint), and then either destroys a
// finished goroutine or tail-requeues a yielded one. Finally it syncs p's
// status (spec.md §4.11).
func (s *Scheduler) ExecuteGoroutine(p *P, g *G) {
	p.SetStatus(PRunning)
	s.preemptInjectionHook(p, g)
	s.dispatched.Add(1)

	finished := s.executeSlice(p, g)

	if finished {
		s.destroyproc(g)
	} else {
		s.trace("[yield] P%d: G%d (%s) -> tail", p.id, g.ID(), g.LastYieldReason())
		if err := s.runqputTailWithReason(p, g); err != nil {
			s.invariant(false, "ExecuteGoroutine: tail requeue of G%d on P%d failed: %v", g.ID(), p.id, err)
		}
	}
	p.SyncStatus()
}

// executeSlice runs a single scheduling slice. If g is malformed (no
// task) it is marked done without ever running. Otherwise, at the
// safepoint immediately before calling the task, a pending preempt
// request is consumed and the task is skipped (finished=false). Otherwise
// the task is invoked exactly once and g is marked done.
func (s *Scheduler) executeSlice(p *P, g *G) (finished bool) {
	if !g.IsExecutionReady() {
		g.SetStatus(GDone)
		return true
	}
	if g.ConsumePreempt() {
		return false
	}
	g.SetStatus(GRunning)
	g.Task()()
	g.SetStatus(GDone)
	s.trace("P%d: G%d done", p.id, g.ID())
	return true
}

// runqputTailWithReason is a thin wrapper over Runqput(p, g, false), kept
// distinct so the yield reason is visible at the call site even though it
// plays no role in the tail-enqueue decision itself (spec.md §4.11 step 5).
func (s *Scheduler) runqputTailWithReason(p *P, g *G) error {
	_ = g.LastYieldReason()
	return s.Runqput(p, g, false)
}
