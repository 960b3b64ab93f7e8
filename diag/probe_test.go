package diag

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/platform"
)

var _ = Describe("Probe", func() {
	var (
		mockCtrl *gomock.Controller
		b        *MockReadOnlyBus
		rom      mem.ROM
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		b = NewMockReadOnlyBus(mockCtrl)
		rom, _ = mem.NewROM(0x90000000, 1024, 32)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should load the first word past the end", func() {
		trap := &platform.Trap{
			Cause: platform.CauseLoadAccess,
			Addr:  0x90001000,
		}
		b.EXPECT().LoadWord(uint32(0x90001000)).Return(uint32(0), trap)

		got, err := ProvokeFault(b, rom.Target())

		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(BeIdenticalTo(trap))
	})

	It("should fail if the load succeeds", func() {
		b.EXPECT().LoadWord(uint32(0x90001000)).Return(uint32(0), nil)

		_, err := ProvokeFault(b, rom.Target())

		Expect(err).To(MatchError(ErrFaultNotRaised))
	})

	It("should fail if the error is not a trap", func() {
		b.EXPECT().LoadWord(uint32(0x90001000)).
			Return(uint32(0), errors.New("hung"))

		_, err := ProvokeFault(b, rom.Target())

		Expect(err).To(MatchError(ContainSubstring("hung")))
	})

	It("should load every checkpoint", func() {
		gomock.InOrder(
			b.EXPECT().LoadWord(uint32(0x90000000)),
			b.EXPECT().LoadWord(uint32(0x90000FFC)),
			b.EXPECT().LoadWord(uint32(0x90000058)),
		)

		Expect(PartialProbe(b, rom.Target(), CheckPoints{0, 1023, 22})).
			To(Succeed())
	})
})
