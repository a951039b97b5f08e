package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunqput_ToRunnextWhenEmpty(t *testing.T) {
	s := Init(1, nil, true)
	p := s.procs[0]
	g := newG(1, nil)

	require.NoError(t, s.Runqput(p, g, true))
	assert.Same(t, g, p.RunnextGet())
	assert.Equal(t, 0, p.localq.Size())
}

func TestRunqput_ToRunnextDemotesPrevious(t *testing.T) {
	s := Init(1, nil, true)
	p := s.procs[0]
	old, next := newG(1, nil), newG(2, nil)

	require.NoError(t, s.Runqput(p, old, true))
	require.NoError(t, s.Runqput(p, next, true))

	assert.Same(t, next, p.RunnextGet())
	front, err := p.localq.Dequeue()
	require.NoError(t, err)
	assert.Same(t, old, front)
}

func TestRunqget_PrefersRunnext(t *testing.T) {
	s := Init(1, nil, true)
	p := s.procs[0]
	qg, rg := newG(1, nil), newG(2, nil)
	require.NoError(t, p.localq.Enqueue(qg))
	p.RunnextSet(rg)

	wi, ok := s.Runqget(p)
	require.True(t, ok)
	assert.Same(t, rg, wi.G)
	assert.Equal(t, SrcRunnext, wi.Src)
}

func TestRunqget_FallsBackToLocalQueue(t *testing.T) {
	s := Init(1, nil, true)
	p := s.procs[0]
	g := newG(1, nil)
	require.NoError(t, p.localq.Enqueue(g))

	wi, ok := s.Runqget(p)
	require.True(t, ok)
	assert.Same(t, g, wi.G)
	assert.Equal(t, SrcRunq, wi.Src)
}

func TestRunqget_EmptyReturnsFalse(t *testing.T) {
	s := Init(1, nil, true)
	_, ok := s.Runqget(s.procs[0])
	assert.False(t, ok)
}

func TestRunqputSlow_OverflowSpillsHalfToGlobal(t *testing.T) {
	s := Init(1, nil, false)
	p := s.procs[0]
	for i := 0; i < LocalQueueCapacity; i++ {
		require.NoError(t, p.localq.Enqueue(newG(uint64(i), nil)))
	}

	overflow := newG(9999, nil)
	require.NoError(t, s.Runqput(p, overflow, false))

	assert.Equal(t, LocalQueueCapacity/2+1, s.global.Size())
	assert.Equal(t, LocalQueueCapacity/2, p.localq.Size())
}

func TestRunqputSlow_SpuriousOverflowGoesDirectToGlobal(t *testing.T) {
	s := Init(1, nil, false)
	p := s.procs[0]
	g := newG(1, nil)

	require.NoError(t, s.RunqputSlow(p, g))
	assert.Equal(t, 1, s.global.Size())
	assert.Equal(t, 0, p.localq.Size())
}

func TestRunqSteal_TakesHalfOfVictim(t *testing.T) {
	s := Init(2, nil, true)
	thief, victim := s.procs[0], s.procs[1]
	for i := 0; i < 10; i++ {
		require.NoError(t, victim.localq.Enqueue(newG(uint64(i), nil)))
	}

	k := s.runqSteal(thief, victim)
	assert.Equal(t, 5, k)
	assert.Equal(t, 5, thief.localq.Size())
	assert.Equal(t, 5, victim.localq.Size())
}

func TestRunqSteal_CappedByThiefAvailableCapacity(t *testing.T) {
	s := Init(2, nil, true)
	thief, victim := s.procs[0], s.procs[1]
	for i := 0; i < LocalQueueCapacity-2; i++ {
		require.NoError(t, thief.localq.Enqueue(newG(uint64(1000+i), nil)))
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, victim.localq.Enqueue(newG(uint64(i), nil)))
	}

	k := s.runqSteal(thief, victim)
	assert.Equal(t, 2, k)
}

func TestRunqSteal_NothingToStealFromEmptyVictim(t *testing.T) {
	s := Init(2, nil, true)
	k := s.runqSteal(s.procs[0], s.procs[1])
	assert.Equal(t, 0, k)
}
