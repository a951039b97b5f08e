package sched

// Globrunqput clears g's scheduling link, appends it to the tail of the
// global run queue, and wakes up to one parked processor.
func (s *Scheduler) Globrunqput(g *G) {
	g.SetLink(nil)
	s.global.Enqueue(g)
	s.WakeForNewWork(1)
}

// Globrunqget drains a heuristically-sized batch off the head of the
// global run queue into p's local queue, returning the first goroutine of
// the batch as an immediately-runnable WorkItem. It returns (nil, false)
// if the global queue is empty.
//
// Batch size heuristic (spec.md §4.7): start from
// global_size/nproc + 1, then clamp (in order) to never take more than
// half of the global queue, to capHint if positive, to half the local
// queue's capacity, and finally to p's currently available local-queue
// capacity. If that leaves zero but the global queue is non-empty and p
// has room, take one goroutine anyway.
func (s *Scheduler) Globrunqget(p *P, capHint int) (*WorkItem, bool) {
	gsize := s.global.Size()
	if gsize == 0 {
		return nil, false
	}
	n := gsize/len(s.procs) + 1
	if half := gsize / 2; n > half {
		n = half
	}
	if capHint > 0 && n > capHint {
		n = capHint
	}
	if max := LocalQueueCapacity / 2; n > max {
		n = max
	}
	avail := p.localq.Available()
	if n > avail {
		n = avail
	}
	if n <= 0 {
		if avail >= 1 {
			n = 1
		} else {
			return nil, false
		}
	}
	cut := s.global.BatchCut(n)
	if cut.ImmediateG == nil {
		return nil, false
	}
	if cut.ChainLen > 0 {
		if err := p.localq.PutBatch(cut.ChainHead); err != nil {
			s.invariant(false, "Globrunqget: local ingestion of pre-clamped batch failed on P%d: %v", p.id, err)
		}
	}
	return &WorkItem{G: cut.ImmediateG, Src: SrcGlobal}, true
}
