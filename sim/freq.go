package sim

import (
	"fmt"
	"log"
	"math"
)

// VTimeInSec defines the time in the simulated space in the unit of second
type VTimeInSec float64

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	return uint64(math.Round(float64(time) * float64(f)))
}

// CycleTime returns the time at which the n-th cycle starts, counting from
// time 0.
func (f Freq) CycleTime(n uint64) VTimeInSec {
	return VTimeInSec(n) * f.Period()
}

// NCyclesLater returns the time after N cycles
//
// This function will always return a time of an integer number of cycles
func (f Freq) NCyclesLater(n uint64, now VTimeInSec) VTimeInSec {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}

	return f.CycleTime(f.Cycle(now) + n)
}

// String prints the frequency with the largest unit that keeps the value
// above one.
func (f Freq) String() string {
	switch {
	case f >= GHz:
		return fmt.Sprintf("%gGHz", float64(f/GHz))
	case f >= MHz:
		return fmt.Sprintf("%gMHz", float64(f/MHz))
	case f >= KHz:
		return fmt.Sprintf("%gKHz", float64(f/KHz))
	default:
		return fmt.Sprintf("%gHz", float64(f))
	}
}
