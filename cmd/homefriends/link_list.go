package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rows of the Owners table",
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := eng.Owners().List()
		if err != nil {
			return fmt.Errorf("list links: %w", err)
		}

		if flagJSON {
			return renderJSON(cmd.OutOrStdout(), links)
		}
		renderLinks(cmd.OutOrStdout(), links)
		return nil
	},
}
