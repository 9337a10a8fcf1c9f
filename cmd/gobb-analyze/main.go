// Command gobb-analyze runs the retrograde analysis of Gobblet
// Gobblers to its fixed point, storing generational snapshots in a data
// directory or a GCS bucket.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
