package diag

import "github.com/sarchlab/memdiag/platform"

// Outcome is the terminal state of a run.
type Outcome int

// Run outcomes.
const (
	// Success means every step ran and the report was printed.
	Success Outcome = iota

	// Unavailable means the console is not implemented. Nothing was
	// printed and no memory was accessed.
	Unavailable

	// UnsupportedPlatform means the cycle counter is not implemented. One
	// diagnostic line was printed and no memory was accessed.
	UnsupportedPlatform
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Unavailable:
		return "console unavailable"
	case UnsupportedPlatform:
		return "unsupported platform"
	default:
		return "unknown outcome"
	}
}

// Status returns the status code of the routine: 0 on success and -1 when
// the run was aborted.
func (o Outcome) Status() int {
	if o == Success {
		return 0
	}

	return -1
}

// Result describes a finished run.
type Result struct {
	Outcome Outcome

	// Write and Read are the sweeps that ran, or nil.
	Write *SweepResult
	Read  *SweepResult

	// Samples holds the words read back by the read sweep, or nil if no
	// read sweep ran.
	Samples SampleBuffer

	// Trap is the trap taken by the fault probe, or nil if no probe ran.
	Trap *platform.Trap
}
