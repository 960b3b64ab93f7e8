package soc

import "github.com/sarchlab/memdiag/platform"

// An RTE is the runtime environment of the SoC. It installs a trap handler
// that reports every exception on the console and lets execution continue
// after the faulting instruction.
type RTE struct {
	core    *Core
	console platform.Console
	traps   []*platform.Trap
}

// NewRTE creates a runtime environment for the core.
func NewRTE(core *Core, console platform.Console) *RTE {
	return &RTE{core: core, console: console}
}

// SetupTraps installs the RTE as the trap handler of the core.
func (r *RTE) SetupTraps() {
	r.core.InstallTrapHandler(r)
}

// HandleTrap records and reports the trap.
func (r *RTE) HandleTrap(t *platform.Trap) {
	r.traps = append(r.traps, t)

	r.console.Printf("<RTE> "+platform.Literal(t.Cause.String())+
		" @ MTVAL=0x%x </RTE>\n",
		t.Addr)
}

// Traps returns the traps handled so far.
func (r *RTE) Traps() []*platform.Trap {
	return r.traps
}
