package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var childListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all child records",
	RunE: func(cmd *cobra.Command, args []string) error {
		children, err := eng.Children().List()
		if err != nil {
			return fmt.Errorf("list children: %w", err)
		}

		if flagJSON {
			return renderJSON(cmd.OutOrStdout(), children)
		}
		renderChildren(cmd.OutOrStdout(), children)
		return nil
	},
}
