package soc

import (
	"errors"
	"log"

	"github.com/sarchlab/memdiag/bus"
	"github.com/sarchlab/memdiag/platform"
	"github.com/sarchlab/memdiag/sim"
)

// Bits of the mxisa CSR.
const (
	MXISAZicsr  = 0
	MXISAZicntr = 7
)

// A Core models the parts of the processor the self-test touches: word
// loads and stores on the external bus, the mcycle and mxisa CSRs, and
// synchronous exceptions.
//
// Every instruction charges cycles. A load or store takes one issue cycle
// plus the bus latency. Reading or writing a CSR takes one cycle, and a
// mcycle read returns the value after its own cycle was counted.
type Core struct {
	sim.HookableBase

	name    string
	freq    sim.Freq
	bus     *bus.Interconnect
	mxisa   uint32
	mcycle  uint32
	cycles  uint64
	handler platform.TrapHandler
}

// Name returns the name of the core.
func (c *Core) Name() string {
	return c.name
}

// Now returns the simulated time.
func (c *Core) Now() sim.VTimeInSec {
	return c.freq.CycleTime(c.cycles)
}

// Cycles returns the number of cycles executed since the core was built.
// Unlike mcycle it is never reset.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// InstallTrapHandler sets the handler invoked on exceptions.
func (c *Core) InstallTrapHandler(h platform.TrapHandler) {
	c.handler = h
}

// Supported reads mxisa and tells if the base counters are implemented.
func (c *Core) Supported() bool {
	return c.ReadCSRMXISA()&(1<<MXISAZicntr) != 0
}

// ReadCSRMXISA reads the machine ISA extension CSR.
func (c *Core) ReadCSRMXISA() uint32 {
	c.advance(1)
	return c.mxisa
}

// Reset writes mcycle.
func (c *Core) Reset(value uint32) {
	c.advance(1)
	c.mcycle = value
}

// Read reads mcycle.
func (c *Core) Read() uint32 {
	c.advance(1)
	return c.mcycle
}

// LoadWord loads a word from the external bus.
func (c *Core) LoadWord(addr uint32) (uint32, error) {
	txn := c.bus.Load(c.Now(), addr)
	c.advance(1 + uint64(txn.Latency))

	if txn.Failed() {
		return 0, c.raise(txn, platform.CauseLoadAccess,
			platform.CauseLoadMisaligned)
	}

	return txn.Data, nil
}

// StoreWord stores a word on the external bus.
func (c *Core) StoreWord(addr uint32, value uint32) error {
	txn := c.bus.Store(c.Now(), addr, value)
	c.advance(1 + uint64(txn.Latency))

	if txn.Failed() {
		return c.raise(txn, platform.CauseStoreAccess,
			platform.CauseStoreMisaligned)
	}

	return nil
}

func (c *Core) advance(n uint64) {
	c.cycles += n
	c.mcycle += uint32(n)
}

func (c *Core) raise(
	txn *bus.Transaction,
	accessCause, misalignedCause platform.Cause,
) *platform.Trap {
	trap := &platform.Trap{
		Cause: accessCause,
		Addr:  txn.Addr,
		Cycle: c.mcycle,
		Err:   txn.Err,
	}

	if errors.Is(txn.Err, bus.ErrMisaligned) {
		trap.Cause = misalignedCause
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    sim.HookPosTrap,
		Item:   trap,
		Detail: txn,
	})

	if c.handler == nil {
		log.Printf("%s: trap taken with no handler installed: %s",
			c.name, trap)
		return trap
	}

	c.handler.HandleTrap(trap)

	return trap
}
