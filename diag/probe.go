package diag

import (
	"errors"
	"fmt"

	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/platform"
)

// ErrFaultNotRaised is returned when the out-of-range load completes
// normally.
var ErrFaultNotRaised = errors.New("out-of-range load was not rejected")

// ProvokeFault loads the first word past the end of the target. The bus is
// expected to answer with an error, which diverts control to the installed
// trap handler; the trap it handled is returned.
func ProvokeFault(b platform.ReadOnlyBus, t mem.Target) (*platform.Trap, error) {
	addr := t.FaultAddr()

	_, err := b.LoadWord(addr)
	if err == nil {
		return nil, fmt.Errorf("%w: 0x%08X", ErrFaultNotRaised, addr)
	}

	var trap *platform.Trap
	if !errors.As(err, &trap) {
		return nil, fmt.Errorf("fault probe at 0x%08X: %w", addr, err)
	}

	return trap, nil
}

// PartialProbe loads the word at every checkpoint of the target and throws
// the values away.
func PartialProbe(b platform.ReadOnlyBus, t mem.Target, cps CheckPoints) error {
	for _, o := range cps {
		if _, err := b.LoadWord(t.Addr(o)); err != nil {
			return fmt.Errorf("partial probe of %s at word %d: %w", t.Name, o, err)
		}
	}

	return nil
}
