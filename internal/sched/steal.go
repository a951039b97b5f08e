package sched

import (
	"math/rand"
	"strconv"
	"strings"
)

// StealTries is the per-processor multiplier on the steal budget: a thief
// scans up to N * StealTries candidates before giving up (spec.md §4.10).
const StealTries = 4

// StealWork attempts to steal half of a victim's local queue into thief's
// local queue, returning the stolen work (tagged SrcRunq, since it was
// moved into the local queue before being taken back out) as a WorkItem.
// It returns (nil, false) if there are fewer than two processors, if
// thief has no room to receive anything, or if the scan exhausts its
// budget (or completes a full unsuccessful round) without finding a
// victim with work.
func (s *Scheduler) StealWork(thief *P) (*WorkItem, bool) {
	nprocs := len(s.procs)
	if nprocs < 2 {
		return nil, false
	}
	if !thief.localq.HasCapacity() {
		return nil, false
	}
	s.stealAttempts.Add(1)

	start := rand.Intn(nprocs)
	budget := nprocs * StealTries
	var scanned []string
	for i := 0; i < budget; i++ {
		if i > 0 && i%nprocs == 0 {
			// Completed a full ring with nothing found; nothing will
			// change between rounds in this single-context scheduler.
			break
		}
		idx := (start + i) % nprocs
		if idx == thief.id {
			continue
		}
		victim := s.procs[idx]
		scanned = append(scanned, "P"+strconv.Itoa(victim.id))
		if victim.localq.Empty() {
			continue
		}
		k := s.runqSteal(thief, victim)
		if k == 0 {
			continue
		}
		s.stealSuccesses.Add(1)
		s.trace("[steal] P%d <- %d from P%d", thief.id, k, victim.id)
		wi, ok := s.Runqget(thief)
		s.invariant(ok, "StealWork: thief P%d has no work immediately after a successful steal", thief.id)
		return &WorkItem{G: wi.G, Src: SrcRunq}, true
	}
	s.trace("[steal] P%d scan(start=%d): %s (all empty)", thief.id, start, strings.Join(scanned, " -> "))
	return nil, false
}
