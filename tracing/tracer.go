// Package tracing records the transactions seen on the external bus.
package tracing

import (
	"github.com/sarchlab/memdiag/bus"
	"github.com/sarchlab/memdiag/sim"
)

// A TraceWriter stores bus transactions.
type TraceWriter interface {
	Write(txn *bus.Transaction)
	Flush()
}

// A BusTracer is a hook that forwards every bus transaction to a writer.
type BusTracer struct {
	writer TraceWriter
}

// NewBusTracer creates a tracer writing to w.
func NewBusTracer(w TraceWriter) *BusTracer {
	return &BusTracer{writer: w}
}

// Func records the transaction carried by a bus access hook. Other hook
// positions are ignored.
func (t *BusTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosBusAccess {
		return
	}

	txn, ok := ctx.Item.(*bus.Transaction)
	if !ok {
		return
	}

	t.writer.Write(txn)
}
