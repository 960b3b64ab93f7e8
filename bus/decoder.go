package bus

import (
	"fmt"
	"sort"

	"github.com/sarchlab/memdiag/mem"
)

// A Slave is a memory block attached to the interconnect.
type Slave struct {
	Target  mem.Target
	Storage *mem.Storage

	// Wait states added to every read or write transaction.
	ReadWaitStates  uint32
	WriteWaitStates uint32
}

type window struct {
	low, high uint64
	slave     *Slave
}

// An AddressDecoder finds the slave whose window holds an address.
type AddressDecoder interface {
	Find(addr uint32) (*Slave, bool)
}

// WindowedDecoder maps every slave into an aligned window starting at the
// slave base. The window can be larger than the slave, in which case the
// slave decodes the extra addresses and answers them with an error.
type WindowedDecoder struct {
	WindowSize uint64
	windows    []window
}

// NewWindowedDecoder creates a decoder with the given window size.
func NewWindowedDecoder(windowSize uint64) *WindowedDecoder {
	return &WindowedDecoder{WindowSize: windowSize}
}

// Map adds a slave. It fails if the slave does not fit in a window or if its
// window overlaps another one.
func (d *WindowedDecoder) Map(s *Slave) error {
	t := s.Target
	size := uint64(t.Depth) * mem.WordSize

	if s.Storage == nil || s.Storage.Depth() != t.Depth {
		return fmt.Errorf("%s: storage does not match depth %d", t.Name, t.Depth)
	}

	if size > d.WindowSize {
		return fmt.Errorf("%s: %d bytes do not fit in a %d byte window",
			t.Name, size, d.WindowSize)
	}

	if uint64(t.Base)%d.WindowSize != 0 {
		return fmt.Errorf("%s: base 0x%08X is not window aligned",
			t.Name, t.Base)
	}

	w := window{
		low:   uint64(t.Base),
		high:  uint64(t.Base) + d.WindowSize,
		slave: s,
	}

	for _, other := range d.windows {
		if w.low < other.high && other.low < w.high {
			return fmt.Errorf("%s overlaps %s",
				t.Name, other.slave.Target.Name)
		}
	}

	d.windows = append(d.windows, w)
	sort.Slice(d.windows, func(i, j int) bool {
		return d.windows[i].low < d.windows[j].low
	})

	return nil
}

// Find returns the slave whose window holds addr.
func (d *WindowedDecoder) Find(addr uint32) (*Slave, bool) {
	a := uint64(addr)
	i := sort.Search(len(d.windows), func(i int) bool {
		return d.windows[i].high > a
	})

	if i < len(d.windows) && d.windows[i].low <= a {
		return d.windows[i].slave, true
	}

	return nil, false
}
