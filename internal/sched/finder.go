package sched

// FindRunnable looks for work for p, in strict order: the fast path and
// local queue (Runqget), then a global batch intake, then a steal attempt.
// It returns (nil, false) if none of the three sources has anything.
func (s *Scheduler) FindRunnable(p *P) (*WorkItem, bool) {
	if wi, ok := s.Runqget(p); ok {
		return wi, true
	}
	if wi, ok := s.Globrunqget(p, 0); ok {
		return wi, true
	}
	if wi, ok := s.StealWork(p); ok {
		return wi, true
	}
	return nil, false
}

// TryRunFromFinder is the dispatch primitive: it looks for work for p via
// FindRunnable and, on a hit, runs it to completion or yield. It returns
// whether work was found.
func (s *Scheduler) TryRunFromFinder(p *P) bool {
	wi, ok := s.FindRunnable(p)
	if !ok {
		return false
	}
	s.trace("P%d: Executing G%d (from %s)", p.id, wi.G.ID(), wi.Src)
	s.ExecuteGoroutine(p, wi.G)
	return true
}
