package bus

// DefaultWindowSize is the size of the address window decoded by each slave.
const DefaultWindowSize = 64 * 1024

// DefaultTimeoutCycles is the number of cycles after which a transaction
// that no slave answers is terminated with an error.
const DefaultTimeoutCycles = 255

// Builder can build interconnects.
type Builder struct {
	windowSize    uint64
	timeoutCycles uint32
	slaves        []Slave
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		windowSize:    DefaultWindowSize,
		timeoutCycles: DefaultTimeoutCycles,
	}
}

// WithWindowSize sets the address window size of every slave.
func (b Builder) WithWindowSize(size uint64) Builder {
	b.windowSize = size
	return b
}

// WithTimeoutCycles sets the bus timeout.
func (b Builder) WithTimeoutCycles(cycles uint32) Builder {
	b.timeoutCycles = cycles
	return b
}

// WithSlave attaches a memory block.
func (b Builder) WithSlave(s Slave) Builder {
	b.slaves = append(append([]Slave(nil), b.slaves...), s)
	return b
}

// Build creates a new Interconnect
func (b Builder) Build(name string) (*Interconnect, error) {
	decoder := NewWindowedDecoder(b.windowSize)

	for i := range b.slaves {
		s := b.slaves[i]
		if err := decoder.Map(&s); err != nil {
			return nil, err
		}
	}

	ic := &Interconnect{
		name:          name,
		decoder:       decoder,
		timeoutCycles: b.timeoutCycles,
	}

	return ic, nil
}
