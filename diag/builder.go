package diag

import (
	"log"

	"github.com/sarchlab/memdiag/platform"
)

// DefaultBaudRate is the console baud rate.
const DefaultBaudRate = 19200

// Builder can build Runners.
type Builder struct {
	console     platform.Console
	counter     platform.CycleCounter
	runtime     platform.Runtime
	mode        Mode
	romStrategy ROMStrategy
	baud        uint32
	simOffsets  []uint32
	hwOffsets   []uint32
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		mode:        ModeHardware,
		romStrategy: ROMPartialProbe,
		baud:        DefaultBaudRate,
		simOffsets:  SimulationOffsets,
		hwOffsets:   HardwareOffsets,
	}
}

// WithConsole sets the console collaborator.
func (b Builder) WithConsole(c platform.Console) Builder {
	b.console = c
	return b
}

// WithCounter sets the cycle counter collaborator.
func (b Builder) WithCounter(c platform.CycleCounter) Builder {
	b.counter = c
	return b
}

// WithRuntime sets the runtime that installs the trap handlers.
func (b Builder) WithRuntime(r platform.Runtime) Builder {
	b.runtime = r
	return b
}

// WithMode selects the variant to run.
func (b Builder) WithMode(m Mode) Builder {
	b.mode = m
	return b
}

// WithROMStrategy selects what the simulation variant does with a ROM.
func (b Builder) WithROMStrategy(s ROMStrategy) Builder {
	b.romStrategy = s
	return b
}

// WithBaudRate sets the console baud rate.
func (b Builder) WithBaudRate(baud uint32) Builder {
	b.baud = baud
	return b
}

// WithCheckPoints replaces the offsets reported in a mode.
func (b Builder) WithCheckPoints(m Mode, offsets ...uint32) Builder {
	offsets = append([]uint32(nil), offsets...)

	if m == ModeSimulation {
		b.simOffsets = offsets
	} else {
		b.hwOffsets = offsets
	}

	return b
}

// Build creates a new Runner
func (b Builder) Build() *Runner {
	if b.console == nil {
		log.Panic("console is not set")
	}

	if b.counter == nil {
		log.Panic("cycle counter is not set")
	}

	if b.runtime == nil {
		log.Panic("runtime is not set")
	}

	return &Runner{
		console:     b.console,
		counter:     b.counter,
		runtime:     b.runtime,
		mode:        b.mode,
		romStrategy: b.romStrategy,
		baud:        b.baud,
		simOffsets:  b.simOffsets,
		hwOffsets:   b.hwOffsets,
	}
}
