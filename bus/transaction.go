package bus

import (
	"errors"
	"fmt"

	"github.com/sarchlab/memdiag/sim"
)

// Kind tells whether a transaction reads or writes.
type Kind int

// Transaction kinds.
const (
	Load Kind = iota
	Store
)

func (k Kind) String() string {
	if k == Store {
		return "store"
	}

	return "load"
}

// A Transaction is one word access on the interconnect.
type Transaction struct {
	ID   string
	Kind Kind
	Addr uint32

	// Data is the word stored, or the word returned by a load. It is zero
	// when the transaction ends with an error.
	Data uint32

	// Slave names the device that served the transaction. It is empty when
	// no device decodes the address.
	Slave string

	Start   sim.VTimeInSec
	Latency uint32
	Err     error
}

// Failed tells if the transaction ended with an error response.
func (t *Transaction) Failed() bool {
	return t.Err != nil
}

// Error reasons reported by the interconnect.
var (
	ErrMisaligned = errors.New("misaligned address")
	ErrUnmapped   = errors.New("no device at address")
	ErrOutOfRange = errors.New("address beyond device depth")
	ErrReadOnly   = errors.New("store to read-only device")
)

// Error is an error response from the interconnect.
type Error struct {
	Kind   Kind
	Addr   uint32
	Slave  string
	Reason error
}

func (e *Error) Error() string {
	if e.Slave == "" {
		return fmt.Sprintf("bus error on %s 0x%08X: %v", e.Kind, e.Addr, e.Reason)
	}

	return fmt.Sprintf("bus error on %s 0x%08X (%s): %v",
		e.Kind, e.Addr, e.Slave, e.Reason)
}

// Unwrap returns the error reason.
func (e *Error) Unwrap() error {
	return e.Reason
}
