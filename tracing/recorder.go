package tracing

import "github.com/sarchlab/memdiag/bus"

// A Recorder keeps transactions in memory.
type Recorder struct {
	txns []*bus.Transaction
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Write appends a transaction.
func (r *Recorder) Write(txn *bus.Transaction) {
	r.txns = append(r.txns, txn)
}

// Flush does nothing; transactions are always available.
func (r *Recorder) Flush() {}

// Transactions returns the recorded transactions in issue order.
func (r *Recorder) Transactions() []*bus.Transaction {
	return r.txns
}

// Count returns the number of transactions of a kind.
func (r *Recorder) Count(kind bus.Kind) int {
	n := 0

	for _, txn := range r.txns {
		if txn.Kind == kind {
			n++
		}
	}

	return n
}

// Failed returns the transactions that ended with an error.
func (r *Recorder) Failed() []*bus.Transaction {
	var failed []*bus.Transaction

	for _, txn := range r.txns {
		if txn.Failed() {
			failed = append(failed, txn)
		}
	}

	return failed
}

// Last returns the most recent transaction, or nil.
func (r *Recorder) Last() *bus.Transaction {
	if len(r.txns) == 0 {
		return nil
	}

	return r.txns[len(r.txns)-1]
}
