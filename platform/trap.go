package platform

import "fmt"

// Cause identifies the reason of a trap, numbered as the RISC-V mcause
// exception codes.
type Cause uint32

// Synchronous exception causes raised by bus accesses.
const (
	CauseLoadMisaligned  Cause = 4
	CauseLoadAccess      Cause = 5
	CauseStoreMisaligned Cause = 6
	CauseStoreAccess     Cause = 7
)

func (c Cause) String() string {
	switch c {
	case CauseLoadMisaligned:
		return "Load address misaligned"
	case CauseLoadAccess:
		return "Load access fault"
	case CauseStoreMisaligned:
		return "Store address misaligned"
	case CauseStoreAccess:
		return "Store access fault"
	default:
		return fmt.Sprintf("Unknown trap cause %d", uint32(c))
	}
}

// A Trap records one exception.
type Trap struct {
	Cause Cause

	// Addr is the faulting address (mtval).
	Addr uint32

	// Cycle is the cycle counter value when the trap was taken.
	Cycle uint32

	// Err is the bus error that caused the trap, if any.
	Err error
}

func (t *Trap) Error() string {
	if t.Err != nil {
		return fmt.Sprintf("%s @ 0x%08X: %v", t.Cause, t.Addr, t.Err)
	}

	return fmt.Sprintf("%s @ 0x%08X", t.Cause, t.Addr)
}

// Unwrap returns the bus error behind the trap.
func (t *Trap) Unwrap() error {
	return t.Err
}
