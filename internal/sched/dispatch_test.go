package sched

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_SingleGSingleP(t *testing.T) {
	s := Init(1, nil, true)
	tracer := NewCollectingTracer()
	s.SetTracer(tracer)

	ran := false
	s.Newproc(s.procs[0], func() { ran = true })

	s.Schedule()

	assert.True(t, ran)
	assert.Equal(t, PParked, s.procs[0].Status())
	assert.True(t, s.global.Empty())
	assert.Equal(t, uint64(1), s.Stats().Dispatched)

	executing, done := 0, 0
	for _, line := range tracer.Lines {
		if strings.Contains(line, "Executing") {
			executing++
		}
		if strings.Contains(line, "done") {
			done++
		}
	}
	assert.Equal(t, 1, executing)
	assert.Equal(t, 1, done)
}

func TestScenario_OverflowSpillToGlobal(t *testing.T) {
	s := Init(1, nil, false)
	p := s.procs[0]

	count := 0
	for i := 0; i < 260; i++ {
		s.Newproc(p, func() { count++ })
	}
	// 258th insertion overflows the (now-full) local queue: 128 goroutines
	// plus the overflowing one spill to the global queue in one batch, and
	// the last two insertions (259, 260) each free a runnext slot back
	// into the local queue.
	require.True(t, p.RunnextHas())
	assert.Equal(t, LocalQueueCapacity/2+1, s.global.Size())
	assert.Equal(t, LocalQueueCapacity/2+2, p.localq.Size())

	s.Schedule()

	assert.Equal(t, 260, count)
	assert.True(t, s.global.Empty())
	assert.Equal(t, PParked, p.Status())
}

func TestScenario_WorkStealingWithEmptyThief(t *testing.T) {
	s := Init(5, nil, true)
	p0 := s.procs[0]

	count := 0
	for i := 0; i < 200; i++ {
		s.Newproc(p0, func() { count++ })
	}

	s.Schedule()

	assert.Equal(t, 200, count)
	for _, p := range s.procs {
		assert.Equal(t, PParked, p.Status())
	}
	assert.Greater(t, s.Stats().StealSuccesses, uint64(0))
}

func TestScenario_TimerWake(t *testing.T) {
	s := Init(2, nil, true)

	var aRan, bRan bool
	ga := newG(0, func() { aRan = true })
	s.Globrunqput(ga)
	gb := newG(0, func() { bRan = true })
	s.TimerPark(gb, 3)

	s.Schedule()

	assert.True(t, aRan)
	assert.True(t, bRan)
	assert.True(t, s.global.Empty())
	assert.Empty(t, s.timers.entries)
}

func TestScenario_NoTasksTeardown(t *testing.T) {
	s := Init(3, nil, true)
	tracer := NewCollectingTracer()
	s.SetTracer(tracer)

	s.Schedule()

	// The first round parks every processor; the loop's termination check
	// only sees idle_count == N on the following tick, so a couple of
	// ticks elapse even though no goroutine was ever created.
	assert.GreaterOrEqual(t, s.Ticks(), uint64(1))
	assert.True(t, s.global.Empty())
	assert.Equal(t, 3, s.NPidle())
	for _, p := range s.procs {
		assert.Equal(t, PParked, p.Status())
	}
}

func TestScenario_PreemptionThenResume(t *testing.T) {
	s := Init(1, nil, true)
	p := s.procs[0]

	ran := 0
	g := s.Newproc(p, func() { ran++ })

	preemptAt := s.nextPreemptTick
	for s.Ticks() < preemptAt {
		s.OnRoundTick()
	}
	assert.True(t, g.PreemptRequested())
	assert.Equal(t, 0, ran)

	ok := s.TryRunFromFinder(p)
	require.True(t, ok)
	assert.Equal(t, 0, ran)
	assert.Equal(t, YieldPreempt, g.LastYieldReason())
	assert.False(t, g.PreemptRequested())

	ok = s.TryRunFromFinder(p)
	require.True(t, ok)
	assert.Equal(t, 1, ran)
}
