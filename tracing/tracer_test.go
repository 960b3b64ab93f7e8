package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/memdiag/bus"
	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/sim"
)

var _ = Describe("BusTracer", func() {
	var (
		ic       *bus.Interconnect
		recorder *Recorder
	)

	BeforeEach(func() {
		target := mem.Target{Name: "RAM", Base: 0xA0000000, Depth: 16,
			Width: 32, Writable: true}

		var err error
		ic, err = bus.MakeBuilder().
			WithSlave(bus.Slave{Target: target,
				Storage: mem.NewStorage(16, 32)}).
			Build("Bus")
		Expect(err).ToNot(HaveOccurred())

		recorder = NewRecorder()
		ic.AcceptHook(NewBusTracer(recorder))
	})

	It("should record every transaction in order", func() {
		ic.Store(0, 0xA0000000, 5)
		ic.Load(1e-8, 0xA0000000)
		ic.Load(2e-8, 0xA0000040)

		txns := recorder.Transactions()
		Expect(txns).To(HaveLen(3))
		Expect(recorder.Count(bus.Store)).To(Equal(1))
		Expect(recorder.Count(bus.Load)).To(Equal(2))
		Expect(txns[1].Data).To(Equal(uint32(5)))
		Expect(recorder.Failed()).To(ConsistOf(txns[2]))
		Expect(recorder.Last()).To(BeIdenticalTo(txns[2]))
	})

	It("should ignore other hook positions", func() {
		tracer := NewBusTracer(recorder)
		tracer.Func(sim.HookCtx{Pos: sim.HookPosTrap, Item: &bus.Transaction{}})
		tracer.Func(sim.HookCtx{Pos: sim.HookPosBusAccess, Item: "not a txn"})

		Expect(recorder.Transactions()).To(BeEmpty())
		Expect(recorder.Last()).To(BeNil())
	})
})
