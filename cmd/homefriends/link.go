package main

import "github.com/spf13/cobra"

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage child-pet links in the Owners table",
}

func init() {
	linkCmd.AddCommand(linkSetCmd)
	linkCmd.AddCommand(linkByChildCmd)
	linkCmd.AddCommand(linkByPetCmd)
	linkCmd.AddCommand(linkListCmd)
}
