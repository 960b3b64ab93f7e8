package platform

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Trap", func() {
	It("should name the cause", func() {
		Expect(CauseLoadAccess.String()).To(Equal("Load access fault"))
		Expect(CauseStoreAccess.String()).To(Equal("Store access fault"))
		Expect(Cause(11).String()).To(Equal("Unknown trap cause 11"))
	})

	It("should wrap the bus error", func() {
		busErr := errors.New("no device")
		var err error = &Trap{Cause: CauseLoadAccess, Addr: 0xA0001000, Err: busErr}

		Expect(err).To(MatchError(busErr))
		Expect(err.Error()).To(Equal(
			"Load access fault @ 0xA0001000: no device"))

		var trap *Trap
		Expect(errors.As(err, &trap)).To(BeTrue())
		Expect(trap.Addr).To(Equal(uint32(0xA0001000)))
	})

	It("should print without a bus error", func() {
		trap := &Trap{Cause: CauseLoadMisaligned, Addr: 0x2}
		Expect(trap.Error()).To(Equal("Load address misaligned @ 0x00000002"))
	})
})
