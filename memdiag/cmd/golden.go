package cmd

import (
	"fmt"
	"strings"

	"github.com/sarchlab/memdiag/config"
	"github.com/sarchlab/memdiag/diag"
)

// parseGolden parses a list like "0=236,297=46" into golden values. Both
// sides accept decimal or 0x-prefixed hexadecimal.
func parseGolden(s string) (diag.Golden, error) {
	golden := diag.Golden{}

	if strings.TrimSpace(s) == "" {
		return golden, nil
	}

	for _, pair := range strings.Split(s, ",") {
		offset, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("golden value %q is not offset=value", pair)
		}

		o, err := config.ParseUint32(strings.TrimSpace(offset))
		if err != nil {
			return nil, fmt.Errorf("golden offset %q: %w", offset, err)
		}

		v, err := config.ParseUint32(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("golden value %q: %w", value, err)
		}

		if _, dup := golden[o]; dup {
			return nil, fmt.Errorf("golden offset %d given twice", o)
		}

		golden[o] = v
	}

	return golden, nil
}
