package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobrunqput_EnqueuesAndWakesOne(t *testing.T) {
	s := Init(2, nil, true)
	s.PidlePut(s.procs[1])

	g := newG(1, nil)
	s.Globrunqput(g)

	assert.Equal(t, 1, s.global.Size())
	assert.Equal(t, 0, s.NPidle())
	assert.Equal(t, PIdle, s.procs[1].Status())
}

func TestGlobrunqget_EmptyGlobalReturnsFalse(t *testing.T) {
	s := Init(2, nil, true)
	_, ok := s.Globrunqget(s.procs[0], 0)
	assert.False(t, ok)
}

func TestGlobrunqget_TakesAtLeastOneWhenRoomExists(t *testing.T) {
	s := Init(4, nil, true)
	s.global.Enqueue(newG(1, nil))

	wi, ok := s.Globrunqget(s.procs[0], 0)
	require.True(t, ok)
	assert.Equal(t, SrcGlobal, wi.Src)
	assert.True(t, s.global.Empty())
}

func TestGlobrunqget_ClampedByCapHint(t *testing.T) {
	s := Init(2, nil, true)
	for i := 0; i < 100; i++ {
		s.global.Enqueue(newG(uint64(i), nil))
	}

	_, ok := s.Globrunqget(s.procs[0], 3)
	require.True(t, ok)
	// capHint=3 means at most 3 leave the global queue (1 immediate + up to 2 chained).
	assert.GreaterOrEqual(t, s.global.Size(), 97)
}

func TestGlobrunqget_NeverExceedsLocalAvailableCapacity(t *testing.T) {
	s := Init(2, nil, true)
	p := s.procs[0]
	for i := 0; i < LocalQueueCapacity-1; i++ {
		require.NoError(t, p.localq.Enqueue(newG(uint64(i), nil)))
	}
	for i := 0; i < 50; i++ {
		s.global.Enqueue(newG(uint64(1000+i), nil))
	}

	wi, ok := s.Globrunqget(p, 0)
	require.True(t, ok)
	assert.NotNil(t, wi)
	assert.LessOrEqual(t, p.localq.Size(), LocalQueueCapacity)
}
