// Command uvoxid encodes, inspects, compares and packs 192-bit spatial codes.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
