// Command livewire is a batch driver for the boundary-tracing engine: it
// stands in for the interactive shell, replaying scripted anchor clicks
// against an image and printing (or exporting) the resulting selection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
