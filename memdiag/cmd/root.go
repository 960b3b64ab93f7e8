// Package cmd provides the command-line interface for memdiag.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memdiag",
	Short: "memdiag tests the RAM and ROM of a simulated soft-core SoC.",
	Long: `memdiag runs the memory self-test firmware against a simulated ` +
		`SoC. It sweeps a memory block, reports the cycle counts and ` +
		`sampled words on the console and, in simulation mode, provokes a ` +
		`bus fault past the end of the block.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
