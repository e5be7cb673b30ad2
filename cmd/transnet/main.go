// Command transnet ingests pairwise genetic-distance data, clusters it into
// transmission networks, and optionally annotates the result with
// per-patient attributes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "transnet",
	Short: "Build and annotate transmission-cluster networks",
	Long:  `transnet turns pairwise genetic-distance data into clustered transmission networks and can annotate the result with per-patient attributes.`,
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
