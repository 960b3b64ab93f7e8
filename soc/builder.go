package soc

import (
	"fmt"
	"io"

	"github.com/sarchlab/memdiag/bus"
	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/sim"
)

// A SoC is a processor core with a console, a runtime environment and two
// memory blocks on its external bus.
type SoC struct {
	Core *Core
	Bus  *bus.Interconnect
	UART *UART
	RTE  *RTE

	RAM        mem.RAM
	RAMStorage *mem.Storage
	ROM        mem.ROM
	ROMStorage *mem.Storage
}

// Builder can build SoCs.
type Builder struct {
	freq          sim.Freq
	ram           mem.RAM
	rom           mem.ROM
	romImage      []uint32
	ramReadWait   uint32
	ramWriteWait  uint32
	romReadWait   uint32
	timeoutCycles uint32
	console       io.Writer
	uartPresent   bool
	zicntr        bool
	hooks         []sim.Hook
}

// MakeBuilder returns a new Builder with a 1024-word RAM and ROM at their
// default addresses.
func MakeBuilder() Builder {
	ram, _ := mem.NewRAM(mem.DefaultRAMBase, mem.DefaultDepth, mem.DefaultWidth)
	rom, _ := mem.NewROM(mem.DefaultROMBase, mem.DefaultDepth, mem.DefaultWidth)

	return Builder{
		freq:          100 * sim.MHz,
		ram:           ram,
		rom:           rom,
		ramReadWait:   1,
		ramWriteWait:  1,
		romReadWait:   2,
		timeoutCycles: bus.DefaultTimeoutCycles,
		console:       io.Discard,
		uartPresent:   true,
		zicntr:        true,
	}
}

// WithFreq sets the core clock.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithRAM sets the RAM block.
func (b Builder) WithRAM(ram mem.RAM) Builder {
	b.ram = ram
	return b
}

// WithROM sets the ROM block.
func (b Builder) WithROM(rom mem.ROM) Builder {
	b.rom = rom
	return b
}

// WithROMImage sets the initial ROM contents.
func (b Builder) WithROMImage(image []uint32) Builder {
	b.romImage = image
	return b
}

// WithRAMWaitStates sets the wait states of RAM reads and writes.
func (b Builder) WithRAMWaitStates(read, write uint32) Builder {
	b.ramReadWait = read
	b.ramWriteWait = write

	return b
}

// WithROMWaitStates sets the wait states of ROM reads.
func (b Builder) WithROMWaitStates(read uint32) Builder {
	b.romReadWait = read
	return b
}

// WithTimeoutCycles sets the bus timeout.
func (b Builder) WithTimeoutCycles(cycles uint32) Builder {
	b.timeoutCycles = cycles
	return b
}

// WithConsole sets where the UART output goes.
func (b Builder) WithConsole(w io.Writer) Builder {
	b.console = w
	return b
}

// WithoutUART builds a SoC whose UART is not implemented.
func (b Builder) WithoutUART() Builder {
	b.uartPresent = false
	return b
}

// WithoutZicntr builds a core without the base counters extension.
func (b Builder) WithoutZicntr() Builder {
	b.zicntr = false
	return b
}

// WithHook attaches a hook to both the core and the bus.
func (b Builder) WithHook(h sim.Hook) Builder {
	b.hooks = append(append([]sim.Hook(nil), b.hooks...), h)
	return b
}

// Build creates a new SoC
func (b Builder) Build(name string) (*SoC, error) {
	for _, t := range []mem.Target{b.ram.Target(), b.rom.Target()} {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	s := &SoC{
		RAM:        b.ram,
		RAMStorage: newStorage(b.ram.Target()),
		ROM:        b.rom,
		ROMStorage: newStorage(b.rom.Target()),
	}

	if err := s.ROMStorage.Load(b.romImage); err != nil {
		return nil, fmt.Errorf("%s: loading ROM: %w", name, err)
	}

	ic, err := bus.MakeBuilder().
		WithWindowSize(b.windowSize()).
		WithTimeoutCycles(b.timeoutCycles).
		WithSlave(bus.Slave{
			Target:          b.ram.Target(),
			Storage:         s.RAMStorage,
			ReadWaitStates:  b.ramReadWait,
			WriteWaitStates: b.ramWriteWait,
		}).
		WithSlave(bus.Slave{
			Target:         b.rom.Target(),
			Storage:        s.ROMStorage,
			ReadWaitStates: b.romReadWait,
		}).
		Build(name + ".Bus")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	s.Bus = ic
	s.Core = &Core{
		name: name + ".Core",
		freq: b.freq,
		bus:  ic,
	}
	s.Core.mxisa = 1 << MXISAZicsr
	if b.zicntr {
		s.Core.mxisa |= 1 << MXISAZicntr
	}

	for _, h := range b.hooks {
		ic.AcceptHook(h)
		s.Core.AcceptHook(h)
	}

	s.UART = NewUART(b.console, b.uartPresent)
	s.RTE = NewRTE(s.Core, s.UART)

	return s, nil
}

func (b Builder) windowSize() uint64 {
	size := uint64(bus.DefaultWindowSize)

	for _, t := range []mem.Target{b.ram.Target(), b.rom.Target()} {
		for size < uint64(t.Depth)*mem.WordSize {
			size <<= 1
		}
	}

	return size
}

func newStorage(t mem.Target) *mem.Storage {
	return mem.NewStorage(t.Depth, t.Width)
}
