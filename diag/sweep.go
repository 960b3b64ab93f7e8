package diag

import (
	"fmt"

	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/platform"
)

// Direction tells whether a sweep writes or reads.
type Direction int

// Sweep directions.
const (
	Write Direction = iota
	Read
)

func (d Direction) String() string {
	if d == Write {
		return "write"
	}

	return "read"
}

// LatencyConvention turns the cycle counter reading taken after a sweep
// into the reported latency.
type LatencyConvention int

// Latency conventions.
const (
	// ConventionRaw reports the reading unchanged.
	ConventionRaw LatencyConvention = iota

	// ConventionSubtractRead removes the cycle spent by the counter read
	// itself.
	ConventionSubtractRead
)

func (c LatencyConvention) elapsed(reading uint32) uint32 {
	if c == ConventionSubtractRead {
		return reading - 1
	}

	return reading
}

// SweepResult is the outcome of one full pass over a target.
type SweepResult struct {
	Direction     Direction
	ElapsedCycles uint32
	Items         uint32
}

// SampleBuffer holds every word read back from a target.
type SampleBuffer []uint32

// NewSampleBuffer allocates a buffer sized to the target depth.
func NewSampleBuffer(t mem.Target) SampleBuffer {
	return make(SampleBuffer, t.Depth)
}

// WriteSweep stores i at word i of the RAM for every word, timing the pass
// with the cycle counter.
func WriteSweep(
	b platform.Bus,
	counter platform.CycleCounter,
	ram mem.RAM,
	conv LatencyConvention,
) (SweepResult, error) {
	t := ram.Target()

	counter.Reset(0)

	for i := uint32(0); i < t.Depth; i++ {
		if err := b.StoreWord(t.Addr(i), i); err != nil {
			return SweepResult{}, fmt.Errorf(
				"write sweep over %s stopped at word %d: %w", t.Name, i, err)
		}
	}

	reading := counter.Read()

	return SweepResult{
		Direction:     Write,
		ElapsedCycles: conv.elapsed(reading),
		Items:         t.Depth,
	}, nil
}

// ReadSweep loads every word of the target into buf, timing the pass with
// the cycle counter.
func ReadSweep(
	b platform.ReadOnlyBus,
	counter platform.CycleCounter,
	t mem.Target,
	buf SampleBuffer,
	conv LatencyConvention,
) (SweepResult, error) {
	if uint32(len(buf)) != t.Depth {
		return SweepResult{}, fmt.Errorf(
			"sample buffer holds %d words, %s has %d", len(buf), t.Name, t.Depth)
	}

	counter.Reset(0)

	for i := uint32(0); i < t.Depth; i++ {
		v, err := b.LoadWord(t.Addr(i))
		if err != nil {
			return SweepResult{}, fmt.Errorf(
				"read sweep over %s stopped at word %d: %w", t.Name, i, err)
		}

		buf[i] = v
	}

	reading := counter.Read()

	return SweepResult{
		Direction:     Read,
		ElapsedCycles: conv.elapsed(reading),
		Items:         t.Depth,
	}, nil
}
