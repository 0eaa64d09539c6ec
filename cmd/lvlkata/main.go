// Command lvlkata runs the exercise algorithms from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlkata/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
