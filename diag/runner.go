package diag

import (
	"fmt"

	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/platform"
)

const (
	msgNoCounters = "ERROR! Base counters ('Zicntr' ISA extensions) " +
		"not implemented!\n"
	msgSimulationStart = "S"
	msgCompleted       = "\nProgram execution completed.\n"
)

type state int

const (
	stateInit state = iota
	stateCapabilityCheck
	stateRunSimulation
	stateRunHardware
	stateDone
)

// A Runner executes the memory self-test against a set of collaborators.
// It is single-shot and run-to-completion: each Run call goes through
// Init, CapabilityCheck, one variant and Done.
type Runner struct {
	console     platform.Console
	counter     platform.CycleCounter
	runtime     platform.Runtime
	mode        Mode
	romStrategy ROMStrategy
	baud        uint32
	simOffsets  []uint32
	hwOffsets   []uint32
}

// Mode returns the variant the runner executes.
func (r *Runner) Mode() Mode {
	return r.mode
}

// run holds the state of one execution.
type run struct {
	target mem.Target
	bus    platform.ReadOnlyBus

	// write is nil for read-only targets.
	write func() (SweepResult, error)

	// checkPoints are the offsets the chosen variant loads or reports.
	checkPoints CheckPoints

	result Result
}

// RunRAM tests a writable target: a write sweep followed by a read sweep.
func (r *Runner) RunRAM(ram mem.RAM, b platform.Bus) (Result, error) {
	return r.execute(&run{
		target: ram.Target(),
		bus:    b,
		write: func() (SweepResult, error) {
			return WriteSweep(b, r.counter, ram, r.mode.convention())
		},
	})
}

// RunROM tests a read-only target.
func (r *Runner) RunROM(rom mem.ROM, b platform.ReadOnlyBus) (Result, error) {
	return r.execute(&run{
		target: rom.Target(),
		bus:    b,
	})
}

func (r *Runner) execute(x *run) (Result, error) {
	cps, err := NewCheckPoints(x.target.Depth, r.offsets(x)...)
	if err != nil {
		return x.result, fmt.Errorf("%s %s run: %w", x.target.Name, r.mode, err)
	}

	x.checkPoints = cps

	for s := stateInit; s != stateDone; {
		s, err = r.step(s, x)
		if err != nil {
			return x.result, err
		}
	}

	return x.result, nil
}

// offsets returns the checkpoint offsets used by the variant that will run
// on the target.
func (r *Runner) offsets(x *run) []uint32 {
	switch {
	case r.mode == ModeHardware:
		return r.hwOffsets
	case x.write == nil && r.romStrategy == ROMPartialProbe:
		return r.hwOffsets
	default:
		return r.simOffsets
	}
}

func (r *Runner) step(s state, x *run) (state, error) {
	switch s {
	case stateInit:
		r.runtime.SetupTraps()
		r.console.Setup(r.baud)

		return stateCapabilityCheck, nil
	case stateCapabilityCheck:
		return r.checkCapabilities(x), nil
	case stateRunSimulation:
		return stateDone, r.runSimulation(x)
	case stateRunHardware:
		return stateDone, r.runHardware(x)
	default:
		return stateDone, nil
	}
}

func (r *Runner) checkCapabilities(x *run) state {
	if !r.console.Available() {
		x.result.Outcome = Unavailable
		return stateDone
	}

	if !r.counter.Supported() {
		r.console.Printf(msgNoCounters)
		x.result.Outcome = UnsupportedPlatform

		return stateDone
	}

	if r.mode == ModeSimulation {
		return stateRunSimulation
	}

	return stateRunHardware
}

func (r *Runner) runSimulation(x *run) error {
	t := x.target
	r.console.Printf(msgSimulationStart)

	switch {
	case x.write != nil:
		if err := r.writeAndRead(x); err != nil {
			return err
		}

		CompactSampler{}.Report(r.console, x.result.Samples, x.checkPoints)
	case r.romStrategy == ROMPartialProbe:
		if err := PartialProbe(x.bus, t, x.checkPoints); err != nil {
			return err
		}
	default:
		if err := r.read(x); err != nil {
			return err
		}

		CompactSampler{}.Report(r.console, x.result.Samples, x.checkPoints)
	}

	trap, err := ProvokeFault(x.bus, t)
	if err != nil {
		return err
	}

	x.result.Trap = trap

	return nil
}

func (r *Runner) runHardware(x *run) error {
	t := x.target
	name := platform.Literal(t.Name)
	depth := t.Depth

	if x.write != nil {
		r.console.Printf("\n<<< WR/RD DATA TO/FROM " + name + " >>>\n")

		if err := r.writeAndRead(x); err != nil {
			return err
		}

		r.console.Printf("\nTo write the entire "+name+
			" (%u elements) %u cycles were required\n",
			depth, x.result.Write.ElapsedCycles)
		r.console.Printf("\nTo read the entire "+name+
			"  (%u elements) %u cycles were required\n",
			depth, x.result.Read.ElapsedCycles)
	} else {
		r.console.Printf("\n<<< LOAD DATA FROM " + name + " >>>\n")

		if err := r.read(x); err != nil {
			return err
		}

		r.console.Printf("\nTo load the entire "+name+
			" (%u elements) %u cycles were required\n",
			depth, x.result.Read.ElapsedCycles)
	}

	VerboseSampler{Name: t.Name}.Report(r.console, x.result.Samples,
		x.checkPoints)

	r.console.Printf(msgCompleted)

	return nil
}

func (r *Runner) writeAndRead(x *run) error {
	wr, err := x.write()
	if err != nil {
		return err
	}

	x.result.Write = &wr

	return r.read(x)
}

func (r *Runner) read(x *run) error {
	buf := NewSampleBuffer(x.target)

	rd, err := ReadSweep(x.bus, r.counter, x.target, buf, r.mode.convention())
	if err != nil {
		return err
	}

	x.result.Read = &rd
	x.result.Samples = buf

	return nil
}
