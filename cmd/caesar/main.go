package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to exit codes:
// usage errors print the usage text and exit 2, everything else exits 1.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "caesar: %v\n", err)

		var uerr *usageError
		if errors.As(err, &uerr) {
			_ = rootCmd.Usage()
			return exitUsage
		}
		return exitFailure
	}
	return 0
}
