package sched

// Newproc creates a new goroutine running task, installs it into p's
// runnext slot, and, if the dispatch loop has already started, wakes one
// parked processor so the new work is noticed promptly.
func (s *Scheduler) Newproc(p *P, task func()) *G {
	g := s.alloc.Alloc()
	id := s.goidgen.Add(1)
	*g = G{id: id, task: task, status: GReady}
	s.goroutinesLive.Add(1)

	if err := s.Runqput(p, g, true); err != nil {
		s.invariant(false, "Newproc: Runqput(toRunnext) failed unexpectedly: %v", err)
	}
	if s.mainStarted {
		s.wakep()
	}
	return g
}

// NewprocAuto creates a new goroutine running task, choosing its target
// processor round-robin. The cursor is single-context state, per spec.md
// §9's note that it must move into shared state (or become atomic) for
// any future multi-context variant.
func (s *Scheduler) NewprocAuto(task func()) *G {
	p := s.procs[s.rrCursor%len(s.procs)]
	s.rrCursor++
	return s.Newproc(p, task)
}

// destroyproc clears g's scheduling link and releases it to the
// allocator. It is called exactly once per goroutine, immediately after
// it reaches GDone (from the runner) or during teardown (from Deinit).
func (s *Scheduler) destroyproc(g *G) {
	g.SetLink(nil)
	s.alloc.Free(g)
	s.goroutinesLive.Add(-1)
}

// wakep tries to wake exactly one parked processor so freshly published
// work is picked up promptly, without waiting for the next round's full
// sweep to stumble onto it.
func (s *Scheduler) wakep() {
	s.TryWake(1)
}
