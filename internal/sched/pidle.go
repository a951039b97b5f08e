package sched

import "go.uber.org/atomic"

// pidle is a LIFO stack of parked processors, chained through P's
// intrusive idleLink field, with an atomic length counter. spec.md §5
// requires npidle to be declared atomic so its contract carries unchanged
// into a future multi-M variant; in this single-context scheduler it is
// only ever touched from the dispatch loop's goroutine.
//
// Invariants (spec.md §3):
//   - I-S1: npidle equals the stack's length.
//   - I-S2: stack membership and P.status == PParked are set and cleared
//     together.
type pidle struct {
	head   *P
	npidle atomic.Int64
}

func newPidle() *pidle {
	return &pidle{}
}

// NPidle returns the number of currently parked processors.
func (s *Scheduler) NPidle() int { return int(s.idle.npidle.Load()) }

// PidlePut parks p: its precondition is !p.HasWork(). It sets p's status
// to PParked, pushes it onto the idle stack, and increments npidle.
func (s *Scheduler) PidlePut(p *P) {
	s.invariant(!p.HasWork(), "PidlePut: P%d still has work", p.id)
	p.SetStatus(PParked)
	p.idleLink = s.idle.head
	s.idle.head = p
	s.idle.npidle.Add(1)
	s.trace("[pidle] +P%d (idle=%d)", p.id, s.NPidle())
}

// PidleGet pops the most recently parked processor, if any, clears its
// idle-stack link, decrements npidle, and sets its status to PRunning (it
// is being handed to an active execution context). It returns (nil, false)
// if the stack is empty.
func (s *Scheduler) PidleGet() (*P, bool) {
	p := s.idle.head
	if p == nil {
		return nil, false
	}
	s.idle.head = p.idleLink
	p.idleLink = nil
	s.idle.npidle.Sub(1)
	p.SetStatus(PRunning)
	return p, true
}

// TryWake pops up to min(n, npidle) processors off the idle stack and
// marks each PIdle, making it eligible for the next round of the dispatch
// loop. It returns the count actually woken. Per spec.md §4.5, the woken
// processor is not separately dispatched here; the next round's finder
// lookup is what actually finds it work.
func (s *Scheduler) TryWake(n int) int {
	woken := 0
	for woken < n {
		p := s.idle.head
		if p == nil {
			break
		}
		s.idle.head = p.idleLink
		p.idleLink = nil
		s.idle.npidle.Sub(1)
		p.SetStatus(PIdle)
		woken++
		s.trace("[pidle] -P%d (idle=%d)", p.id, s.NPidle())
	}
	return woken
}

// WakeForNewWork is the single entry point used by global-queue enqueue
// and local-queue overflow spill to announce newly published work. It
// wakes min(k, npidle) parked processors.
func (s *Scheduler) WakeForNewWork(k int) int {
	return s.TryWake(min(k, s.NPidle()))
}
