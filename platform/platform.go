// Package platform defines what the memory self-test needs from the system
// it runs on. The self-test only calls into these contracts; the soc package
// provides a simulated implementation of all of them.
package platform

import "strings"

// Console is a line-oriented serial transport.
type Console interface {
	// Setup configures the transport. It must be called before Available.
	Setup(baud uint32)

	// Available tells if the transport is implemented at all.
	Available() bool

	// Printf emits formatted text. The format supports %u (unsigned
	// decimal), %x and %X (unsigned hexadecimal) and %%.
	Printf(format string, args ...uint32)
}

// CycleCounter is the free-running machine cycle counter.
type CycleCounter interface {
	// Supported tells if the counter extension is implemented.
	Supported() bool

	// Reset sets the counter to value.
	Reset(value uint32)

	// Read returns the current counter value.
	Read() uint32
}

// ReadOnlyBus issues word loads.
type ReadOnlyBus interface {
	// LoadWord loads the 32-bit word at addr. If the bus responds with an
	// error, the installed trap handler runs first and the returned error
	// is the *Trap it was given.
	LoadWord(addr uint32) (uint32, error)
}

// Bus issues word loads and stores.
type Bus interface {
	ReadOnlyBus

	// StoreWord stores value at addr, trapping like LoadWord on errors.
	StoreWord(addr uint32, value uint32) error
}

// TrapHandler intercepts exceptions raised by the core.
type TrapHandler interface {
	HandleTrap(t *Trap)
}

// Runtime is the platform runtime environment.
type Runtime interface {
	// SetupTraps installs the exception handlers. It must run before any
	// memory access.
	SetupTraps()
}

// Literal escapes s so that Console.Printf prints it unchanged when it is
// part of a format.
func Literal(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
