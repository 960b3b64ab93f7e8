// Package config collects the settings of a memdiag run.
//
// Settings start from defaults, are overridden by .env files and then by
// MEMDIAG_* environment variables. The command line applies its flags last.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sarchlab/memdiag/diag"
	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/sim"
)

// Names of the targets that can be tested.
const (
	TargetRAM = "ram"
	TargetROM = "rom"
)

// Environment variables.
const (
	EnvMode        = "MEMDIAG_MODE"
	EnvTarget      = "MEMDIAG_TARGET"
	EnvDepth       = "MEMDIAG_DEPTH"
	EnvWidth       = "MEMDIAG_WIDTH"
	EnvRAMBase     = "MEMDIAG_RAM_BASE"
	EnvROMBase     = "MEMDIAG_ROM_BASE"
	EnvROMImage    = "MEMDIAG_ROM_IMAGE"
	EnvROMStrategy = "MEMDIAG_ROM_STRATEGY"
	EnvFreqMHz     = "MEMDIAG_FREQ_MHZ"
	EnvBaud        = "MEMDIAG_BAUD"
	EnvTraceDB     = "MEMDIAG_TRACE_DB"
)

// Config holds the settings of a run.
type Config struct {
	Mode        diag.Mode
	Target      string
	Depth       uint32
	Width       uint32
	RAMBase     uint32
	ROMBase     uint32
	ROMImage    string
	ROMStrategy diag.ROMStrategy
	Freq        sim.Freq
	Baud        uint32

	// TraceDB is the SQLite file the bus trace goes to. An empty string
	// disables tracing.
	TraceDB string
}

// Default returns the settings of the reference system.
func Default() Config {
	return Config{
		Mode:        diag.ModeHardware,
		Target:      TargetRAM,
		Depth:       mem.DefaultDepth,
		Width:       mem.DefaultWidth,
		RAMBase:     mem.DefaultRAMBase,
		ROMBase:     mem.DefaultROMBase,
		ROMStrategy: diag.ROMPartialProbe,
		Freq:        100 * sim.MHz,
		Baud:        diag.DefaultBaudRate,
	}
}

// Load builds a configuration from the defaults, the given .env files and
// the process environment, in increasing order of precedence.
func Load(envFiles ...string) (Config, error) {
	vars := map[string]string{}

	if len(envFiles) > 0 {
		fromFiles, err := godotenv.Read(envFiles...)
		if err != nil {
			return Config{}, fmt.Errorf("reading env files: %w", err)
		}

		vars = fromFiles
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := vars[key]

		return v, ok
	}

	c := Default()
	if err := c.apply(lookup); err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	var err error

	set := func(key string, parse func(string) error) {
		v, ok := lookup(key)
		if !ok || err != nil {
			return
		}

		if perr := parse(strings.TrimSpace(v)); perr != nil {
			err = fmt.Errorf("%s: %w", key, perr)
		}
	}

	set(EnvMode, func(s string) (e error) { c.Mode, e = diag.ParseMode(s); return })
	set(EnvTarget, func(s string) error { c.Target = strings.ToLower(s); return nil })
	set(EnvDepth, uintSetter(&c.Depth))
	set(EnvWidth, uintSetter(&c.Width))
	set(EnvRAMBase, uintSetter(&c.RAMBase))
	set(EnvROMBase, uintSetter(&c.ROMBase))
	set(EnvROMImage, func(s string) error { c.ROMImage = s; return nil })
	set(EnvROMStrategy, func(s string) (e error) {
		c.ROMStrategy, e = diag.ParseROMStrategy(s)
		return
	})
	set(EnvFreqMHz, func(s string) error {
		mhz, e := strconv.ParseFloat(s, 64)
		c.Freq = sim.Freq(mhz) * sim.MHz

		return e
	})
	set(EnvBaud, uintSetter(&c.Baud))
	set(EnvTraceDB, func(s string) error { c.TraceDB = s; return nil })

	return err
}

func uintSetter(dst *uint32) func(string) error {
	return func(s string) error {
		v, err := ParseUint32(s)
		*dst = v

		return err
	}
}

// ParseUint32 parses a decimal or 0x-prefixed hexadecimal number.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

// Validate checks that the configuration describes a system that can be
// built.
func (c Config) Validate() error {
	if c.Target != TargetRAM && c.Target != TargetROM {
		return fmt.Errorf("unknown target %q", c.Target)
	}

	if c.Freq <= 0 {
		return fmt.Errorf("frequency must be positive")
	}

	if c.Baud == 0 {
		return fmt.Errorf("baud rate must be positive")
	}

	if c.ROMImage != "" && c.Target != TargetROM {
		return fmt.Errorf("a ROM image is only used when testing the ROM")
	}

	if _, err := c.RAM(); err != nil {
		return err
	}

	if _, err := c.ROM(); err != nil {
		return err
	}

	return nil
}

// RAM describes the RAM block.
func (c Config) RAM() (mem.RAM, error) {
	return mem.NewRAM(c.RAMBase, c.Depth, c.Width)
}

// ROM describes the ROM block.
func (c Config) ROM() (mem.ROM, error) {
	return mem.NewROM(c.ROMBase, c.Depth, c.Width)
}
