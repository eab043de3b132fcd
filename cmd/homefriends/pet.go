package main

import "github.com/spf13/cobra"

var petCmd = &cobra.Command{
	Use:   "pet",
	Short: "Manage pet records",
}

func init() {
	petCmd.AddCommand(petAddCmd)
	petCmd.AddCommand(petDeleteCmd)
	petCmd.AddCommand(petListCmd)
}
