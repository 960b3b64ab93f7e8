package cmd

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/sarchlab/memdiag/diag"
)

var _ = Describe("Run", func() {
	var (
		flags *pflag.FlagSet
		out   *bytes.Buffer
	)

	BeforeEach(func() {
		for _, key := range []string{"MEMDIAG_MODE", "MEMDIAG_TARGET",
			"MEMDIAG_TRACE_DB", "MEMDIAG_ROM_IMAGE"} {
			GinkgoT().Setenv(key, "")
			os.Unsetenv(key)
		}

		flags = pflag.NewFlagSet("run", pflag.ContinueOnError)
		addRunFlags(flags)
		out = new(bytes.Buffer)
	})

	It("should run the RAM test in simulation mode", func() {
		Expect(flags.Parse([]string{"--mode", "sim", "--golden", "297=297"})).
			To(Succeed())

		Expect(runSelfTest(flags, out)).To(Succeed())
		Expect(out.String()).To(HavePrefix("S-0,0--297,297-END<RTE>"))
	})

	It("should check the ROM against golden values", func() {
		image := filepath.Join("..", "..", "diag", "testdata", "rom8.hex")
		Expect(flags.Parse([]string{
			"--target", "rom",
			"--width", "8",
			"--rom-image", image,
			"--golden", "0=236,297=46",
		})).To(Succeed())

		Expect(runSelfTest(flags, out)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("ROM OUTPUT is: 236   <0xec>"))
	})

	It("should report a golden mismatch", func() {
		Expect(flags.Parse([]string{"--golden", "1=7"})).To(Succeed())

		err := runSelfTest(flags, out)

		var mismatch *diag.MismatchError
		Expect(err).To(BeAssignableToTypeOf(mismatch))
	})

	It("should refuse golden values when nothing is read back", func() {
		Expect(flags.Parse([]string{
			"--target", "rom", "--mode", "sim", "--golden", "0=0",
		})).To(Succeed())

		Expect(runSelfTest(flags, out)).ToNot(Succeed())
		Expect(out.String()).To(HavePrefix("S<RTE>"))
	})

	It("should reject an unknown mode", func() {
		Expect(flags.Parse([]string{"--mode", "turbo"})).To(Succeed())

		Expect(runSelfTest(flags, out)).ToNot(Succeed())
		Expect(out.Len()).To(BeZero())
	})

	It("should record the bus trace", func() {
		db := filepath.Join(GinkgoT().TempDir(), "trace")
		Expect(flags.Parse([]string{"--mode", "sim", "--trace-db", db})).
			To(Succeed())

		Expect(runSelfTest(flags, out)).To(Succeed())

		conn, err := sql.Open("sqlite3", db+".sqlite3")
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		var stores, loads, failed int
		Expect(conn.QueryRow(
			"select count(*) from bus_trace where kind = 'store'").
			Scan(&stores)).To(Succeed())
		Expect(conn.QueryRow(
			"select count(*) from bus_trace where kind = 'load'").
			Scan(&loads)).To(Succeed())
		Expect(conn.QueryRow(
			"select count(*) from bus_trace where error is not null").
			Scan(&failed)).To(Succeed())

		Expect(stores).To(Equal(1024))
		Expect(loads).To(Equal(1025))
		Expect(failed).To(Equal(1))
	})

	It("should accept the target in any case", func() {
		Expect(flags.Parse([]string{"--target", "ROM", "--mode", "sim"})).
			To(Succeed())

		Expect(runSelfTest(flags, out)).To(Succeed())
		Expect(out.String()).To(HaveSuffix("MTVAL=0x90001000 </RTE>\n"))
	})

	It("should fail before any output when the depth is too small", func() {
		Expect(flags.Parse([]string{"--depth", "256"})).To(Succeed())

		Expect(runSelfTest(flags, out)).To(MatchError(
			ContainSubstring("checkpoint 256")))
		Expect(out.Len()).To(BeZero())
	})
})
