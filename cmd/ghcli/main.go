// Command ghcli is the external driver for the graph cohomology engine: it
// wires family tags from the command line into families/ordinary,
// families/hairy, and gc.Complex, and calls into the core packages. It
// contains no algorithmic logic of its own, only flag parsing and
// orchestration.
package main

import "github.com/grafhom/gh/cmd/ghcli/cmd"

func main() {
	cmd.Execute()
}
