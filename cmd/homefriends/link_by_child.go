// Link by-child command finds the pet linked to a child.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/homefriends/internal/engine"
)

var linkByChildCmd = &cobra.Command{
	Use:   "by-child <child-id>",
	Short: "Find the pet linked to a child",
	Long: `By-child resolves the child and looks up its pet in the Owners table.

A child without a link reports "unlinked". A link pointing at a pet
that no longer exists reports the inconsistency instead of failing.

Example:
  homefriends link by-child 1`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkByChild,
}

func runLinkByChild(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	search, err := eng.SearchByChild(id)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), search)
	}

	out := cmd.OutOrStdout()
	switch search.Status {
	case engine.StatusFound:
		fmt.Fprintf(out, "Child %q (ID %d) is linked to pet %q (ID %d, %s, %d months)\n",
			search.Child.FullName(), search.Child.ID,
			search.Pet.Nickname, search.Pet.ID, search.Pet.Species, search.Pet.Age)
	case engine.StatusUnlinked:
		fmt.Fprintf(out, "Child %q (ID %d) is not linked to any pet\n",
			search.Child.FullName(), search.Child.ID)
	case engine.StatusInconsistent:
		fmt.Fprintf(out, "Warning: child %q is linked to pet #%d, but that pet no longer exists; check data consistency\n",
			search.Child.FullName(), search.DanglingPetID)
	}
	return nil
}
