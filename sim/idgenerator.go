package sim

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// IDGenerator can generate IDs
type IDGenerator interface {
	Generate() string
}

var (
	idGeneratorOnce sync.Once
	idGenerator     IDGenerator
)

// GetIDGenerator returns the ID generator shared by all components. IDs are
// sequential, so the bus traces of two identical runs are identical.
func GetIDGenerator() IDGenerator {
	idGeneratorOnce.Do(func() {
		idGenerator = &sequentialIDGenerator{}
	})

	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	id := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(id, 10)
}
