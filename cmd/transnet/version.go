package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of transnet",
	Long:  `All software has versions. This is transnet's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("transnet " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
