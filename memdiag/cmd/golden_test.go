package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/memdiag/diag"
)

var _ = Describe("Golden values", func() {
	It("should parse decimal and hexadecimal pairs", func() {
		golden, err := parseGolden("0=236, 297=0x2E")

		Expect(err).ToNot(HaveOccurred())
		Expect(golden).To(Equal(diag.Golden{0: 236, 297: 46}))
	})

	It("should accept an empty list", func() {
		golden, err := parseGolden("")

		Expect(err).ToNot(HaveOccurred())
		Expect(golden).To(BeEmpty())
	})

	DescribeTable("should reject malformed lists",
		func(s string) {
			_, err := parseGolden(s)
			Expect(err).To(HaveOccurred())
		},
		Entry("missing value", "0"),
		Entry("bad offset", "x=1"),
		Entry("bad value", "0=y"),
		Entry("duplicate offset", "0=1,0=2"),
	)
})
