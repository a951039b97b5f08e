// Package sched implements the core of a miniature, single-threaded,
// cooperative reimplementation of the Go runtime's GMP scheduler: a fixed
// pool of logical processors (P) dispatching goroutines (G) through a
// per-P runnext fast path, bounded per-P local run queues, a shared global
// run queue, a LIFO idle-processor stack, randomized work stealing, and a
// tick-driven preemption and timer timeline.
//
// Everything in this package executes on a single goroutine: the dispatch
// loop is the only actor. There are no OS threads and no real time; the
// only clock is the logical tick counter advanced once per round. See
// (*Scheduler).Schedule for the loop itself.
package sched
