// Command taptempo measures a tempo from key presses.
//
// Usage:
//
//	taptempo [flags]
//
// Press Enter once per beat; type q to quit.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-tempo/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
