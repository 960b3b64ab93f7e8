// Command memdiag runs the memory self-test on a simulated SoC.
package main

import "github.com/sarchlab/memdiag/memdiag/cmd"

func main() {
	cmd.Execute()
}
