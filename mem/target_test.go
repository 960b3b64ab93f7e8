package mem

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Target", func() {
	It("should compute the address range", func() {
		ram, err := NewRAM(DefaultRAMBase, 1024, 32)
		Expect(err).ToNot(HaveOccurred())

		t := ram.Target()
		Expect(t.Name).To(Equal("RAM"))
		Expect(t.Writable).To(BeTrue())
		Expect(t.Addr(297)).To(Equal(uint32(0xA00004A4)))
		Expect(t.LastAddr()).To(Equal(uint32(0xA0000FFC)))
		Expect(t.FaultAddr()).To(Equal(uint32(0xA0001000)))
	})

	It("should describe ROM as read-only", func() {
		rom, err := NewROM(DefaultROMBase, 1024, 16)
		Expect(err).ToNot(HaveOccurred())

		t := rom.Target()
		Expect(t.Name).To(Equal("ROM"))
		Expect(t.Writable).To(BeFalse())
		Expect(t.FaultAddr()).To(Equal(uint32(0x90001000)))
	})

	It("should tell if an address is a valid word", func() {
		t := Target{Base: 0x1000, Depth: 4, Width: 32}

		Expect(t.Contains(0x1000)).To(BeTrue())
		Expect(t.Contains(0x100C)).To(BeTrue())
		Expect(t.Contains(0x1010)).To(BeFalse())
		Expect(t.Contains(0x1002)).To(BeFalse())
		Expect(t.Contains(0x0FFC)).To(BeFalse())
	})

	DescribeTable("invalid targets",
		func(t Target) {
			Expect(t.Validate()).ToNot(Succeed())
		},
		Entry("zero depth", Target{Name: "x", Depth: 0, Width: 32}),
		Entry("depth not power of two", Target{Name: "x", Depth: 1000, Width: 32}),
		Entry("bad width", Target{Name: "x", Depth: 1024, Width: 24}),
		Entry("unaligned base", Target{Name: "x", Base: 2, Depth: 1024, Width: 32}),
		Entry("overflow", Target{Name: "x", Base: 0xFFFFF000, Depth: 2048, Width: 32}),
	)

	It("should accept a block ending at the top of the address space", func() {
		t := Target{Name: "x", Base: 0xFFFFF000, Depth: 1024, Width: 32}
		Expect(t.Validate()).To(Succeed())
	})
})
