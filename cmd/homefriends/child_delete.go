// Child delete command removes a child and cascade-deletes its link row.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var childDeleteYes bool

var childDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a child record and its link row",
	Long: `Delete removes the child record and, if the child has an entry in the
Owners table, removes that entire row as well.

Example:
  homefriends child delete 3
  homefriends child delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runChildDelete,
}

func init() {
	childDeleteCmd.Flags().BoolVar(&childDeleteYes, "yes", false, "skip the confirmation prompt")
}

func runChildDelete(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	if !childDeleteYes {
		child, err := eng.Children().GetByID(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"Deleting child %q (ID %d) also removes their Owners entry.\n",
			child.FullName(), child.ID)
		if !confirmAction(cmd, "Are you sure?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	result, err := eng.DeleteChild(id)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Child %q deleted\n", result.Child.FullName())
	if result.LinkRemoved {
		fmt.Fprintln(cmd.OutOrStdout(), "Removed the child's row from the Owners table")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No Owners entry existed for this child")
	}
	return nil
}
