// Command neocat explores near-Earth objects and their close approaches to
// Earth, loaded from a NEO CSV file and a close-approach JSON document.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
