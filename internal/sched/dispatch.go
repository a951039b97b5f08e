package sched

// Schedule runs the dispatch loop to termination (spec.md §4.12): each
// round advances the tick, processes expired timers and a possible
// preemption pass, checks the termination condition, then visits every
// processor in id order and lets it either run one scheduling slice or
// park.
func (s *Scheduler) Schedule() {
	s.run(0)
}

// ScheduleBounded runs the dispatch loop to termination, or until
// maxRounds rounds have executed, whichever comes first. It is a demo
// safety valve (no effect on scheduling decisions), not part of the
// core's own termination contract.
func (s *Scheduler) ScheduleBounded(maxRounds uint64) {
	s.run(maxRounds)
}

func (s *Scheduler) run(maxRounds uint64) {
	s.mainStarted = true
	round := uint64(1)

	for {
		s.OnRoundTick()
		s.trace("--- Round %d ---", round)

		if s.global.Empty() && s.NPidle() == len(s.procs) {
			break
		}
		if maxRounds > 0 && round > maxRounds {
			break
		}

		for _, p := range s.procs {
			switch p.Status() {
			case PParked:
				continue
			case PIdle:
				if !s.TryRunFromFinder(p) {
					s.PidlePut(p)
				}
			case PRunning:
				if !s.TryRunFromFinder(p) {
					if !(s.anyOtherPHasWork(p) && s.TryRunFromFinder(p)) {
						s.PidlePut(p)
					}
				}
			}
		}

		s.rounds.Add(1)
		round++
	}
}

// anyOtherPHasWork reports whether the global queue, or any processor
// other than p, currently holds runnable work. It is the dispatch loop's
// cheap pre-check before asking an apparently idle-going P to retry its
// finder once more (spec.md §4.12).
func (s *Scheduler) anyOtherPHasWork(p *P) bool {
	if !s.global.Empty() {
		return true
	}
	for _, other := range s.procs {
		if other.id == p.id {
			continue
		}
		if other.HasWork() {
			return true
		}
	}
	return false
}
