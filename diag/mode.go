package diag

import "fmt"

// Mode selects which variant of the self-test runs.
type Mode int

// Operating modes.
const (
	// ModeHardware prints a verbose report meant for a person reading the
	// console, including the latency of every sweep. It never provokes a
	// bus fault.
	ModeHardware Mode = iota

	// ModeSimulation prints a compact machine-parsable report and ends by
	// provoking a bus fault, so that a testbench can observe the bus error
	// signal.
	ModeSimulation
)

func (m Mode) String() string {
	switch m {
	case ModeHardware:
		return "hw"
	case ModeSimulation:
		return "sim"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "hw" or "sim". The long forms "hardware" and
// "simulation" are accepted too.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "hw", "hardware":
		return ModeHardware, nil
	case "sim", "simulation":
		return ModeSimulation, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// convention returns how the mode turns a counter reading into a latency.
func (m Mode) convention() LatencyConvention {
	if m == ModeHardware {
		return ConventionSubtractRead
	}

	return ConventionRaw
}

// ROMStrategy selects what the simulation variant does with a ROM before
// the fault probe.
type ROMStrategy int

// ROM strategies.
const (
	// ROMPartialProbe loads the words at the hardware checkpoints and
	// prints nothing about them.
	ROMPartialProbe ROMStrategy = iota

	// ROMReadAll reads the whole ROM and prints the compact report.
	ROMReadAll
)

func (s ROMStrategy) String() string {
	switch s {
	case ROMPartialProbe:
		return "partial"
	case ROMReadAll:
		return "all"
	default:
		return fmt.Sprintf("ROMStrategy(%d)", int(s))
	}
}

// ParseROMStrategy parses "partial" or "all".
func ParseROMStrategy(s string) (ROMStrategy, error) {
	switch s {
	case "partial":
		return ROMPartialProbe, nil
	case "all":
		return ROMReadAll, nil
	default:
		return 0, fmt.Errorf("unknown ROM strategy %q", s)
	}
}
