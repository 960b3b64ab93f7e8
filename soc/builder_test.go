package soc

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/sim"
)

var _ = Describe("Builder", func() {
	It("should preload the ROM image", func() {
		rom, err := mem.NewROM(mem.DefaultROMBase, 1024, 8)
		Expect(err).ToNot(HaveOccurred())

		s, err := MakeBuilder().
			WithROM(rom).
			WithROMImage([]uint32{0xEC, 0x01, 0x2E}).
			Build("SoC")
		Expect(err).ToNot(HaveOccurred())

		v, err := s.Core.LoadWord(0x90000008)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint32(0x2E)))
	})

	It("should reject an image larger than the ROM", func() {
		rom, _ := mem.NewROM(mem.DefaultROMBase, 2, 32)

		_, err := MakeBuilder().
			WithROM(rom).
			WithROMImage([]uint32{1, 2, 3}).
			Build("SoC")
		Expect(err).To(MatchError(ContainSubstring("loading ROM")))
	})

	It("should grow the decode window for deep blocks", func() {
		ram, _ := mem.NewRAM(mem.DefaultRAMBase, 1<<16, 32)

		s, err := MakeBuilder().WithRAM(ram).Build("SoC")
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Core.StoreWord(ram.Target().LastAddr(), 7)).To(Succeed())
	})

	It("should reject overlapping blocks", func() {
		rom, _ := mem.NewROM(mem.DefaultRAMBase, 1024, 32)

		_, err := MakeBuilder().WithROM(rom).Build("SoC")
		Expect(err).To(HaveOccurred())
	})

	It("should use the configured wait states", func() {
		s, err := MakeBuilder().
			WithFreq(50 * sim.MHz).
			WithRAMWaitStates(0, 3).
			Build("SoC")
		Expect(err).ToNot(HaveOccurred())

		s.Core.Reset(0)
		Expect(s.Core.StoreWord(mem.DefaultRAMBase, 1)).To(Succeed())
		_, _ = s.Core.LoadWord(mem.DefaultRAMBase)

		Expect(s.Core.Read()).To(Equal(uint32(5 + 2 + 1)))
	})

	It("should attach hooks to the bus and the core", func() {
		count := 0
		s, _ := MakeBuilder().
			WithHook(sim.HookFunc(func(sim.HookCtx) { count++ })).
			Build("SoC")

		_, _ = s.Core.LoadWord(mem.DefaultRAMBase)
		Expect(count).To(Equal(1))

		_, _ = s.Core.LoadWord(0x10000000)
		Expect(count).To(Equal(3))
	})
})
