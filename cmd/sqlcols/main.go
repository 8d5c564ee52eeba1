// Command sqlcols parses, checks and formats SQL with COLUMNS expressions.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlcols/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
