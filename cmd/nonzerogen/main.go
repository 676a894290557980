// Command nonzerogen checks and generates Go declarations of non-zero
// integer constants.
package main

import (
	"os"

	"github.com/roach88/nonzero/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
