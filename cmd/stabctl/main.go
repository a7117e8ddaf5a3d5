// Command stabctl searches certified stability regions for parameter-
// dependent LTI systems: the nu, data, and custom subcommands.
package main

import (
	"os"

	"github.com/cwbudde/stabregion/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.New(version).Run(); err != nil {
		os.Exit(1)
	}
}
