// Package cpupolicy resolves a processor count policy to a concrete P
// count, clamped to the range the scheduler core accepts.
package cpupolicy

import (
	"fmt"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"
)

// Policy names a strategy for picking the number of processors to run
// with.
type Policy string

const (
	OnePerCore   Policy = "one-per-core"
	HalfCores    Policy = "half-cores"
	QuarterCores Policy = "quarter-cores"
	DoubleCores  Policy = "double-cores"
	Custom       Policy = "custom"
)

// MinProcs and MaxProcs mirror the bound internal/sched.Init clamps its
// processor count to.
const (
	MinProcs = 1
	MaxProcs = 64
)

// undoMaxProcs, once set by Detect, restores GOMAXPROCS to its
// pre-detection value. Detect calls it before detecting again, so
// repeated calls within one process start from the original value.
var undoMaxProcs func()

// Detect applies container/cgroup-aware GOMAXPROCS detection (honoring
// any CPU quota the process is confined to) and returns the resulting
// logical core count, which is the base every policy scales from.
func Detect() (int, error) {
	if undoMaxProcs != nil {
		undoMaxProcs()
		undoMaxProcs = nil
	}
	undo, err := maxprocs.Set()
	if err != nil {
		return 0, fmt.Errorf("cpupolicy: detecting GOMAXPROCS: %w", err)
	}
	undoMaxProcs = undo
	return runtime.GOMAXPROCS(0), nil
}

// Resolve turns a policy (and, for Custom, an explicit count) into a
// processor count clamped to [MinProcs, MaxProcs]. It calls Detect
// internally to establish the logical core count the non-custom policies
// scale from.
func Resolve(p Policy, customProcs int) (int, error) {
	cores, err := Detect()
	if err != nil {
		return 0, err
	}

	var n int
	switch p {
	case OnePerCore:
		n = cores
	case HalfCores:
		n = cores / 2
	case QuarterCores:
		n = cores / 4
	case DoubleCores:
		n = cores * 2
	case Custom:
		n = customProcs
	default:
		return 0, fmt.Errorf("cpupolicy: unknown policy %q", p)
	}

	if n < MinProcs {
		n = MinProcs
	}
	if n > MaxProcs {
		n = MaxProcs
	}
	return n, nil
}
