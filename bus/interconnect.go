package bus

import (
	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/sim"
)

// An Interconnect routes word transactions from the core to the memory
// blocks mapped on the external bus.
//
// A transaction that decodes to a slave completes after one cycle plus the
// slave wait states, with either an acknowledge or an error response. A
// transaction that no slave decodes is answered with an error when the bus
// timeout expires.
type Interconnect struct {
	sim.HookableBase

	name          string
	decoder       AddressDecoder
	timeoutCycles uint32
}

// Name returns the name of the interconnect.
func (ic *Interconnect) Name() string {
	return ic.name
}

// Load reads the word at addr.
func (ic *Interconnect) Load(now sim.VTimeInSec, addr uint32) *Transaction {
	txn := ic.newTransaction(now, Load, addr)

	if slave, ok := ic.route(txn); ok {
		txn.Latency = 1 + slave.ReadWaitStates

		data, err := slave.Storage.Read(ic.index(txn, slave))
		if err != nil {
			ic.fail(txn, ErrOutOfRange)
		} else {
			txn.Data = data
		}
	}

	ic.complete(txn)

	return txn
}

// Store writes data at addr.
func (ic *Interconnect) Store(now sim.VTimeInSec, addr, data uint32) *Transaction {
	txn := ic.newTransaction(now, Store, addr)
	txn.Data = data

	if slave, ok := ic.route(txn); ok {
		txn.Latency = 1 + slave.WriteWaitStates

		if !slave.Target.Writable {
			ic.fail(txn, ErrReadOnly)
		} else if err := slave.Storage.Write(ic.index(txn, slave), data); err != nil {
			ic.fail(txn, ErrOutOfRange)
		}
	}

	ic.complete(txn)

	return txn
}

func (ic *Interconnect) newTransaction(
	now sim.VTimeInSec,
	kind Kind,
	addr uint32,
) *Transaction {
	return &Transaction{
		ID:    sim.GetIDGenerator().Generate(),
		Kind:  kind,
		Addr:  addr,
		Start: now,
	}
}

func (ic *Interconnect) route(txn *Transaction) (*Slave, bool) {
	if txn.Addr%mem.WordSize != 0 {
		ic.fail(txn, ErrMisaligned)
		return nil, false
	}

	slave, found := ic.decoder.Find(txn.Addr)
	if !found {
		txn.Latency = ic.timeoutCycles
		ic.fail(txn, ErrUnmapped)

		return nil, false
	}

	txn.Slave = slave.Target.Name

	return slave, true
}

func (ic *Interconnect) index(txn *Transaction, slave *Slave) uint32 {
	return (txn.Addr - slave.Target.Base) / mem.WordSize
}

func (ic *Interconnect) fail(txn *Transaction, reason error) {
	txn.Data = 0
	txn.Err = &Error{
		Kind:   txn.Kind,
		Addr:   txn.Addr,
		Slave:  txn.Slave,
		Reason: reason,
	}
}

func (ic *Interconnect) complete(txn *Transaction) {
	ic.InvokeHook(sim.HookCtx{
		Domain: ic,
		Pos:    sim.HookPosBusAccess,
		Item:   txn,
	})
}
