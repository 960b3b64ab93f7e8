package mem

import (
	"fmt"
	"math/bits"
)

// WordSize is the number of bytes in one bus word.
const WordSize = 4

// Default placement of the memory blocks on the external bus.
const (
	DefaultRAMBase  uint32 = 0xA0000000
	DefaultROMBase  uint32 = 0x90000000
	DefaultDepth    uint32 = 1024
	DefaultWidth    uint32 = 32
	maxAddressSpace        = uint64(1) << 32
)

// A Target describes a memory block under test. Targets are fixed when the
// system is built and never change afterwards.
type Target struct {
	Name     string
	Base     uint32
	Depth    uint32
	Width    uint32
	Writable bool
}

// Validate checks that the target can be mapped on a 32-bit bus.
func (t Target) Validate() error {
	if t.Depth == 0 || bits.OnesCount32(t.Depth) != 1 {
		return fmt.Errorf("%s: depth %d is not a power of two", t.Name, t.Depth)
	}

	if !validWidth(t.Width) {
		return fmt.Errorf("%s: unsupported data width %d", t.Name, t.Width)
	}

	if t.Base%WordSize != 0 {
		return fmt.Errorf("%s: base 0x%08X is not word aligned", t.Name, t.Base)
	}

	if uint64(t.Base)+uint64(t.Depth)*WordSize > maxAddressSpace {
		return fmt.Errorf("%s: range overflows the address space", t.Name)
	}

	return nil
}

// Addr returns the bus address of the word at index.
func (t Target) Addr(index uint32) uint32 {
	return t.Base + WordSize*index
}

// LastAddr returns the address of the last valid word.
func (t Target) LastAddr() uint32 {
	return t.Addr(t.Depth - 1)
}

// FaultAddr returns the first address strictly outside the valid range.
// The bus is expected to reject any access to it.
func (t Target) FaultAddr() uint32 {
	return t.Addr(t.Depth)
}

// Contains tells if addr falls on a valid word of the target.
func (t Target) Contains(addr uint32) bool {
	return addr >= t.Base &&
		addr <= t.LastAddr() &&
		(addr-t.Base)%WordSize == 0
}

// RAM is a writable target.
type RAM struct {
	target Target
}

// ROM is a read-only target.
type ROM struct {
	target Target
}

// NewRAM describes a writable block at base.
func NewRAM(base, depth, width uint32) (RAM, error) {
	t := Target{Name: "RAM", Base: base, Depth: depth, Width: width,
		Writable: true}
	if err := t.Validate(); err != nil {
		return RAM{}, err
	}

	return RAM{target: t}, nil
}

// NewROM describes a read-only block at base.
func NewROM(base, depth, width uint32) (ROM, error) {
	t := Target{Name: "ROM", Base: base, Depth: depth, Width: width}
	if err := t.Validate(); err != nil {
		return ROM{}, err
	}

	return ROM{target: t}, nil
}

// Target returns the block description.
func (r RAM) Target() Target { return r.target }

// Target returns the block description.
func (r ROM) Target() Target { return r.target }

