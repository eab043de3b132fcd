package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the registry storage",
	Long: `Init creates the configuration directory with a default config.yaml and
opens the configured backend once, creating the three tables with their
header rows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already opened and seeded by PersistentPreRunE.
		fmt.Println("Registry initialized successfully")
		return nil
	},
}
