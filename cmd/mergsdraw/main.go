// Command mergsdraw renders the MERGS electron-optic beamline design as an
// SVG schematic.
package main

import (
	"fmt"
	"os"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
