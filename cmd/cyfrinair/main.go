// Command cyfrinair generates passwords, passphrases and GUIDs from the
// terminal using the same engine as the HTTP service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
