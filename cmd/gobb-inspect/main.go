// Command gobb-inspect explores a stored analysis table interactively:
// it shows per-position results and ranks every forward and retrograde
// move, best moves marked.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
