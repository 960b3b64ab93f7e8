package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sarchlab/memdiag/config"
	"github.com/sarchlab/memdiag/diag"
	"github.com/sarchlab/memdiag/mem"
	"github.com/sarchlab/memdiag/soc"
	"github.com/sarchlab/memdiag/tracing"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the self-test on one memory block.",
	Long: `Run builds a SoC from the configuration, runs the self-test on the ` +
		`selected block and prints the console output. Settings come from ` +
		`the .env files given with --env, then MEMDIAG_* environment ` +
		`variables, then flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfTest(cmd.Flags(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd.Flags())
}

func addRunFlags(f *pflag.FlagSet) {
	f.StringSlice("env", nil, "The .env files to load.")
	f.String("mode", "", "The variant to run, hw or sim.")
	f.String("target", "", "The block to test, ram or rom.")
	f.Uint32("depth", 0, "The number of words in each block.")
	f.Uint32("width", 0, "The data width of each block in bits.")
	f.String("rom-image", "", "A hex file holding the ROM contents.")
	f.String("rom-strategy", "",
		"What the sim variant does with the ROM, partial or all.")
	f.String("trace-db", "",
		"Record every bus transaction to this SQLite file.")
	f.String("golden", "",
		"Expected words, as offset=value pairs separated by commas.")
}

func runSelfTest(flags *pflag.FlagSet, out io.Writer) error {
	envFiles, _ := flags.GetStringSlice("env")

	c, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	if err = applyFlags(flags, &c); err != nil {
		return err
	}

	goldenFlag, _ := flags.GetString("golden")

	golden, err := parseGolden(goldenFlag)
	if err != nil {
		return err
	}

	s, trace, err := buildSoC(c, out)
	if err != nil {
		return err
	}

	if trace != nil {
		defer trace.Flush()
	}

	runner := diag.MakeBuilder().
		WithConsole(s.UART).
		WithCounter(s.Core).
		WithRuntime(s.RTE).
		WithMode(c.Mode).
		WithROMStrategy(c.ROMStrategy).
		WithBaudRate(c.Baud).
		Build()

	var result diag.Result
	if c.Target == config.TargetROM {
		result, err = runner.RunROM(s.ROM, s.Core)
	} else {
		result, err = runner.RunRAM(s.RAM, s.Core)
	}

	if err != nil {
		return err
	}

	if result.Outcome != diag.Success {
		return fmt.Errorf("self-test aborted: %s (status %d)",
			result.Outcome, result.Outcome.Status())
	}

	if len(golden) == 0 {
		return nil
	}

	if result.Samples == nil {
		return fmt.Errorf("golden values given but the %s run read nothing back",
			c.Mode)
	}

	return diag.Verify(result.Samples, golden)
}

func applyFlags(flags *pflag.FlagSet, c *config.Config) error {
	var err error

	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		v := f.Value.String()

		switch f.Name {
		case "mode":
			c.Mode, err = diag.ParseMode(v)
		case "target":
			c.Target = strings.ToLower(v)
		case "depth":
			c.Depth, err = config.ParseUint32(v)
		case "width":
			c.Width, err = config.ParseUint32(v)
		case "rom-image":
			c.ROMImage = v
		case "rom-strategy":
			c.ROMStrategy, err = diag.ParseROMStrategy(v)
		case "trace-db":
			c.TraceDB = v
		}
	})

	if err != nil {
		return err
	}

	return c.Validate()
}

// buildSoC assembles the system under test. The returned trace writer is nil
// when tracing is off.
func buildSoC(
	c config.Config,
	out io.Writer,
) (*soc.SoC, *tracing.SQLiteTraceWriter, error) {
	ram, err := c.RAM()
	if err != nil {
		return nil, nil, err
	}

	rom, err := c.ROM()
	if err != nil {
		return nil, nil, err
	}

	b := soc.MakeBuilder().
		WithFreq(c.Freq).
		WithRAM(ram).
		WithROM(rom).
		WithConsole(out)

	if c.ROMImage != "" {
		image, err := mem.LoadImageFile(c.ROMImage, c.Width)
		if err != nil {
			return nil, nil, err
		}

		b = b.WithROMImage(image)
	}

	var w *tracing.SQLiteTraceWriter

	if c.TraceDB != "" {
		w = tracing.NewSQLiteTraceWriter(c.TraceDB)
		if err := w.Init(); err != nil {
			return nil, nil, err
		}

		b = b.WithHook(tracing.NewBusTracer(w))
	}

	s, err := b.Build("SoC")
	if err != nil {
		return nil, nil, err
	}

	return s, w, nil
}
