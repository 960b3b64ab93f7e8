package mem

import (
	"errors"
	"fmt"
	"log"
)

// ErrBeyondCapacity is returned when an index is outside the storage depth.
var ErrBeyondCapacity = errors.New("accessing word beyond the storage capacity")

// A Storage keeps the words held by one memory block.
//
// Each slot holds a word of Width bits. Values written are truncated to the
// width, so a store of 297 into an 8-bit block reads back as 41.
type Storage struct {
	width uint32
	mask  uint32
	data  []uint32
}

// NewStorage creates a zero-filled storage with depth word slots of the given
// data width.
func NewStorage(depth, width uint32) *Storage {
	if !validWidth(width) {
		log.Panicf("unsupported data width %d", width)
	}

	return &Storage{
		width: width,
		mask:  widthMask(width),
		data:  make([]uint32, depth),
	}
}

// Depth returns the number of word slots.
func (s *Storage) Depth() uint32 {
	return uint32(len(s.data))
}

// Width returns the data width in bits.
func (s *Storage) Width() uint32 {
	return s.width
}

// Read returns the word at index.
func (s *Storage) Read(index uint32) (uint32, error) {
	if index >= s.Depth() {
		return 0, ErrBeyondCapacity
	}

	return s.data[index], nil
}

// Write stores value at index, truncated to the storage width.
func (s *Storage) Write(index uint32, value uint32) error {
	if index >= s.Depth() {
		return ErrBeyondCapacity
	}

	s.data[index] = value & s.mask

	return nil
}

// Load copies an image into the storage starting from index 0. Slots past
// the end of the image are cleared.
func (s *Storage) Load(image []uint32) error {
	if uint32(len(image)) > s.Depth() {
		return fmt.Errorf("image of %d words does not fit in %d slots",
			len(image), s.Depth())
	}

	for i := range s.data {
		s.data[i] = 0
	}

	for i, w := range image {
		s.data[i] = w & s.mask
	}

	return nil
}

func validWidth(width uint32) bool {
	switch width {
	case 8, 16, 32:
		return true
	default:
		return false
	}
}

func widthMask(width uint32) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}

	return 1<<width - 1
}
