package sim

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should generate increasing IDs", func() {
		g := GetIDGenerator()

		first, _ := strconv.ParseUint(g.Generate(), 10, 64)
		second, _ := strconv.ParseUint(g.Generate(), 10, 64)

		Expect(second).To(Equal(first + 1))
		Expect(GetIDGenerator()).To(BeIdenticalTo(g))
	})
})
