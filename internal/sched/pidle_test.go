package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidle_PutGetIsLIFO(t *testing.T) {
	s := Init(3, nil, true)
	p0, p1, p2 := s.procs[0], s.procs[1], s.procs[2]

	s.PidlePut(p0)
	s.PidlePut(p1)
	s.PidlePut(p2)
	assert.Equal(t, 3, s.NPidle())

	got, ok := s.PidleGet()
	require.True(t, ok)
	assert.Same(t, p2, got)
	assert.Equal(t, PRunning, got.Status())

	got, ok = s.PidleGet()
	require.True(t, ok)
	assert.Same(t, p1, got)

	assert.Equal(t, 1, s.NPidle())
}

func TestPidle_GetOnEmptyStack(t *testing.T) {
	s := Init(1, nil, true)
	_, ok := s.PidleGet()
	assert.False(t, ok)
}

func TestPidle_TryWakeMarksIdleNotRunning(t *testing.T) {
	s := Init(2, nil, true)
	p0, p1 := s.procs[0], s.procs[1]
	s.PidlePut(p0)
	s.PidlePut(p1)

	woken := s.TryWake(1)
	assert.Equal(t, 1, woken)
	assert.Equal(t, 1, s.NPidle())
	assert.Equal(t, PIdle, p1.Status())
}

func TestPidle_TryWakeCapsAtAvailable(t *testing.T) {
	s := Init(2, nil, true)
	s.PidlePut(s.procs[0])
	woken := s.TryWake(5)
	assert.Equal(t, 1, woken)
}

func TestPidle_WakeForNewWorkCapsAtNPidle(t *testing.T) {
	s := Init(3, nil, true)
	s.PidlePut(s.procs[0])
	woken := s.WakeForNewWork(10)
	assert.Equal(t, 1, woken)
}
