// Command solve24 solves the 24 game from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/solve24/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "solve24:", msg)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
