// Command semlist manages mailing-list databases grouped into
// Outlook-sized batches.
package main

import (
	"fmt"
	"os"

	"github.com/dutykh/semlist/internal/cli"
	"github.com/dutykh/semlist/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
// Kept separate from main so tests can reference it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
