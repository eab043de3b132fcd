package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var petListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pet records",
	RunE: func(cmd *cobra.Command, args []string) error {
		pets, err := eng.Pets().List()
		if err != nil {
			return fmt.Errorf("list pets: %w", err)
		}

		if flagJSON {
			return renderJSON(cmd.OutOrStdout(), pets)
		}
		renderPets(cmd.OutOrStdout(), pets)
		return nil
	},
}
