package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sarchlab/memdiag/platform"
)

// A Sampler prints the words at a set of checkpoints.
type Sampler interface {
	Report(console platform.Console, buf SampleBuffer, cps CheckPoints)
}

// CompactSampler prints one "-offset,value-" pair per checkpoint in decimal
// and appends END right after the last pair. A harness that sees END knows
// the transmission finished instead of stalling halfway.
type CompactSampler struct{}

// Report prints the compact pairs.
func (CompactSampler) Report(
	console platform.Console,
	buf SampleBuffer,
	cps CheckPoints,
) {
	for i, o := range cps {
		console.Printf("-%u,%u-", o, buf[o])

		if i == len(cps)-1 {
			console.Printf("END")
		}
	}
}

// VerboseSampler prints each checkpoint offset and value in decimal and
// hexadecimal.
type VerboseSampler struct {
	// Name labels the value lines, as in "RAM OUTPUT is".
	Name string
}

// Report prints the verbose blocks.
func (s VerboseSampler) Report(
	console platform.Console,
	buf SampleBuffer,
	cps CheckPoints,
) {
	console.Printf("\nCheck these %u data to verify the reading\n",
		uint32(len(cps)))

	format := "\n" + platform.Literal(s.Name) + " OUTPUT is: %u   <0x%x>\n"

	for _, o := range cps {
		console.Printf("\nFOR address:  %u    <0x%x>", o, o)
		console.Printf(format, buf[o], buf[o])
	}
}

// Golden maps buffer offsets to expected values.
type Golden map[uint32]uint32

// A Mismatch is one checkpoint whose value differs from the golden value.
type Mismatch struct {
	Offset uint32
	Want   uint32
	Got    uint32
}

// MismatchError lists every golden value that was not read back.
type MismatchError struct {
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("offset %d: want %d (0x%X), got %d (0x%X)",
			m.Offset, m.Want, m.Want, m.Got, m.Got))
	}

	return "golden mismatch: " + strings.Join(parts, "; ")
}

// Verify compares the buffer against golden values.
func Verify(buf SampleBuffer, golden Golden) error {
	offsets := make([]uint32, 0, len(golden))
	for o := range golden {
		offsets = append(offsets, o)
	}

	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	var mismatches []Mismatch

	for _, o := range offsets {
		if o >= uint32(len(buf)) {
			return fmt.Errorf("golden offset %d outside a %d word buffer",
				o, len(buf))
		}

		if buf[o] != golden[o] {
			mismatches = append(mismatches,
				Mismatch{Offset: o, Want: golden[o], Got: buf[o]})
		}
	}

	if len(mismatches) > 0 {
		return &MismatchError{Mismatches: mismatches}
	}

	return nil
}
