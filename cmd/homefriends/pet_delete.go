// Pet delete command removes a pet and orphan-clears its link cell.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var petDeleteYes bool

var petDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a pet record and clear its link",
	Long: `Delete removes the pet record and, if the pet is linked in the Owners
table, blanks only the pet cell; the child's row is kept.

Example:
  homefriends pet delete 2
  homefriends pet delete 2 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runPetDelete,
}

func init() {
	petDeleteCmd.Flags().BoolVar(&petDeleteYes, "yes", false, "skip the confirmation prompt")
}

func runPetDelete(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	if !petDeleteYes {
		pet, err := eng.Pets().GetByID(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"Deleting pet %q (ID %d) also clears its assignment in the Owners table.\n",
			pet.Nickname, pet.ID)
		if !confirmAction(cmd, "Are you sure?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	result, err := eng.DeletePet(id)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pet %q deleted\n", result.Pet.Nickname)
	if result.LinkCleared {
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared the pet's cell in the Owners table")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No Owners link existed for this pet")
	}
	return nil
}
