package diag

import "fmt"

// CheckPoints is an ordered list of buffer offsets to report.
type CheckPoints []uint32

// SimulationOffsets are reported by the simulation variant.
var SimulationOffsets = []uint32{0, 297}

// HardwareOffsets are reported by the hardware variant. They cover the
// boundaries, every power of two and a few interior points.
var HardwareOffsets = []uint32{
	0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1023, 22, 73, 587, 666,
}

// NewCheckPoints validates offsets against a buffer depth.
func NewCheckPoints(depth uint32, offsets ...uint32) (CheckPoints, error) {
	for _, o := range offsets {
		if o >= depth {
			return nil, fmt.Errorf(
				"checkpoint %d outside [0, %d]", o, int64(depth)-1)
		}
	}

	return append(CheckPoints(nil), offsets...), nil
}
