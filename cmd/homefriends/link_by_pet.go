// Link by-pet command finds the child linked to a pet.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/homefriends/internal/engine"
)

var linkByPetCmd = &cobra.Command{
	Use:   "by-pet <pet-id>",
	Short: "Find the child linked to a pet",
	Long: `By-pet resolves the pet and looks up its owner in the Owners table.

A pet without a link reports "unlinked". A link naming a child that no
longer exists reports the inconsistency instead of failing.

Example:
  homefriends link by-pet 1`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkByPet,
}

func runLinkByPet(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	search, err := eng.SearchByPet(id)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), search)
	}

	out := cmd.OutOrStdout()
	switch search.Status {
	case engine.StatusFound:
		fmt.Fprintf(out, "Pet %q (ID %d) is linked to child %q (ID %d, age %d)\n",
			search.Pet.Nickname, search.Pet.ID,
			search.Child.FullName(), search.Child.ID, search.Child.Age)
	case engine.StatusUnlinked:
		fmt.Fprintf(out, "Pet %q (ID %d) is not linked to any child\n",
			search.Pet.Nickname, search.Pet.ID)
	case engine.StatusInconsistent:
		fmt.Fprintf(out, "Warning: pet #%d is linked to %q, but that child no longer exists; check data consistency\n",
			search.Pet.ID, search.DanglingChildName)
	}
	return nil
}
