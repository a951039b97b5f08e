package sched

import "math/rand"

// Runqput installs g on processor p, either into the runnext fast-path
// slot or onto the tail of the local queue, per spec.md §4.6.
//
//   - toRunnext && runnext empty: install g into runnext.
//   - toRunnext && runnext occupied: demote the current occupant to the
//     local queue tail and install g into runnext; if the demoted
//     goroutine doesn't fit, it falls back to RunqputSlow.
//   - !toRunnext: tail-enqueue g into the local queue, falling back to
//     RunqputSlow on overflow.
func (s *Scheduler) Runqput(p *P, g *G, toRunnext bool) error {
	if toRunnext {
		if !p.RunnextHas() {
			p.RunnextSet(g)
			return nil
		}
		old := p.RunnextClear()
		p.RunnextSet(g)
		if err := p.localq.Enqueue(old); err != nil {
			return s.RunqputSlow(p, old)
		}
		return nil
	}
	if err := p.localq.Enqueue(g); err != nil {
		return s.RunqputSlow(p, g)
	}
	return nil
}

// RunqputSlow handles local-queue overflow: it moves the first half of
// p's local queue to the global run queue together with newG, in a single
// batch, and wakes up to that many idle processors. If the local queue
// wasn't actually full (H == 0, i.e. the overflow was spurious), newG is
// enqueued directly to the global queue instead.
func (s *Scheduler) RunqputSlow(p *P, newG *G) error {
	h := p.localq.Size() / 2
	if h == 0 {
		s.Globrunqput(newG)
		return nil
	}
	batch := make([]*G, 0, LocalQueueCapacity/2+1)
	for i := 0; i < h; i++ {
		g, err := p.localq.Dequeue()
		if err != nil {
			break
		}
		batch = append(batch, g)
	}
	batch = append(batch, newG)
	if s.debug {
		rand.Shuffle(len(batch), func(i, j int) {
			batch[i], batch[j] = batch[j], batch[i]
		})
	}
	s.global.EnqueueBatch(batch)
	s.WakeForNewWork(len(batch))
	return nil
}

// Runqget returns the next runnable goroutine owned by p, preferring the
// runnext slot (passive replenishment: consuming runnext never refills it
// from the local queue) and falling back to the local queue's front. It
// returns (nil, false) if p has no work.
func (s *Scheduler) Runqget(p *P) (*WorkItem, bool) {
	if p.RunnextHas() {
		g := p.RunnextClear()
		return &WorkItem{G: g, Src: SrcRunnext}, true
	}
	g, err := p.localq.Dequeue()
	if err != nil {
		return nil, false
	}
	return &WorkItem{G: g, Src: SrcRunq}, true
}

// runqSteal moves min(victim's local size / 2, thief's available
// capacity) goroutines from the front of victim's local queue to the tail
// of thief's local queue, in FIFO order, and returns the count moved.
// victim's runnext is never touched.
func (s *Scheduler) runqSteal(thief, victim *P) int {
	k := victim.localq.Size() / 2
	if avail := thief.localq.Available(); k > avail {
		k = avail
	}
	if k <= 0 {
		return 0
	}
	for i := 0; i < k; i++ {
		g, err := victim.localq.Dequeue()
		if err != nil {
			s.invariant(false, "runqSteal: victim P%d ran dry mid-steal", victim.id)
			break
		}
		if err := thief.localq.Enqueue(g); err != nil {
			s.invariant(false, "runqSteal: thief P%d rejected pre-cleared capacity", thief.id)
			break
		}
	}
	return k
}
