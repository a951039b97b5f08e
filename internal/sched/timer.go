package sched

// DefaultPreemptPeriod is the number of ticks between preemption passes
// (spec.md §4.13).
const DefaultPreemptPeriod = 7

type timerEntry struct {
	g        *G
	deadline uint64
}

// timerList is an unordered sequence of (goroutine, deadline-tick) pairs
// supporting O(1) append and O(1) removal via swap-with-last-and-pop.
//
// Invariant (spec.md §3): a goroutine on the timer list is on no run
// queue and in no runnext slot (I-T1).
type timerList struct {
	entries []timerEntry
}

func newTimerList() *timerList { return &timerList{} }

func (tl *timerList) append(g *G, deadline uint64) {
	tl.entries = append(tl.entries, timerEntry{g: g, deadline: deadline})
}

// removeAt deletes the entry at index i via swap-with-last, O(1).
func (tl *timerList) removeAt(i int) timerEntry {
	e := tl.entries[i]
	last := len(tl.entries) - 1
	tl.entries[i] = tl.entries[last]
	tl.entries = tl.entries[:last]
	return e
}

// drain removes and returns every entry, emptying the list.
func (tl *timerList) drain() []timerEntry {
	es := tl.entries
	tl.entries = nil
	return es
}

// TimerPark appends (g, ticks+delayTicks) to the timer list. It is the
// optional demo hook named in spec.md §6.
func (s *Scheduler) TimerPark(g *G, delayTicks uint64) {
	s.timers.append(g, s.ticks.Load()+delayTicks)
}

// OnRoundTick advances the logical tick counter by one, fires any expired
// timers, and runs a preemption pass if one is due (spec.md §4.13).
func (s *Scheduler) OnRoundTick() {
	s.ticks.Add(1)
	s.ProcessExpiredTimers()
	s.MaybePreemptPass()
}

// ProcessExpiredTimers scans the timer list once; every entry whose
// deadline has passed is removed (swap-with-last + pop, without advancing
// the scan index past the slot that just got a new occupant) and its
// goroutine is published to the global queue, waking a parked processor.
func (s *Scheduler) ProcessExpiredTimers() {
	now := s.ticks.Load()
	i := 0
	for i < len(s.timers.entries) {
		if s.timers.entries[i].deadline <= now {
			e := s.timers.removeAt(i)
			s.Globrunqput(e.g)
			continue
		}
		i++
	}
}

// MaybePreemptPass marks the next local candidate on every processor for
// preemption, if the preempt period has elapsed. It peeks (never
// consumes) each processor's runnext occupant, or its local queue front
// if runnext is empty, and sets the preempt-request flag if one isn't
// already pending.
func (s *Scheduler) MaybePreemptPass() {
	if s.ticks.Load() < s.nextPreemptTick {
		return
	}
	s.nextPreemptTick += s.preemptPeriod
	for _, p := range s.procs {
		if g := p.RunnextGet(); g != nil {
			if !g.PreemptRequested() {
				g.RequestPreempt()
				s.trace("[preemptor] mark G%d (P%d runnext)", g.ID(), p.id)
			}
			continue
		}
		if g := p.LocalQueue().Front(); g != nil {
			if !g.PreemptRequested() {
				g.RequestPreempt()
				s.trace("[preemptor] mark G%d (P%d runq-front)", g.ID(), p.id)
			}
		}
	}
}
