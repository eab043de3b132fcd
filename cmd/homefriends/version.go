package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version of the homefriends CLI.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("homefriends v%s\n", version)
	},
}
