// Link set command associates a child with a pet.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/homefriends/pkg/types"
)

var (
	linkChildID int
	linkPetID   int
	linkReplace bool
)

var linkSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Link a child to a pet",
	Long: `Set records in the Owners table that a pet belongs to a child.

When the child is already linked to a different pet, or the pet already
belongs to a different child, the conflict is reported and nothing is
written; pass --replace to override. Replacing blanks the pet out of
its previous owner's row first. Linking an already-linked pair is a
no-op.

Example:
  homefriends link set --child 1 --pet 1
  homefriends link set --child 1 --pet 2 --replace`,
	RunE: runLinkSet,
}

func init() {
	linkSetCmd.Flags().IntVar(&linkChildID, "child", 0, "child ID (required)")
	linkSetCmd.Flags().IntVar(&linkPetID, "pet", 0, "pet ID (required)")
	linkSetCmd.Flags().BoolVar(&linkReplace, "replace", false, "replace conflicting links")
	_ = linkSetCmd.MarkFlagRequired("child")
	_ = linkSetCmd.MarkFlagRequired("pet")
}

func runLinkSet(cmd *cobra.Command, args []string) error {
	result, err := eng.Link(linkChildID, linkPetID, linkReplace)
	if err != nil {
		if errors.Is(err, types.ErrChildAlreadyLinked) || errors.Is(err, types.ErrPetAlreadyLinked) {
			return fmt.Errorf("%w (re-run with --replace to override)", err)
		}
		return err
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if result.AlreadyLinked {
		fmt.Fprintf(out, "Child %q is already linked to pet %q; nothing to do\n",
			result.Child.FullName(), result.Pet.Nickname)
		return nil
	}
	if result.ClearedOwner != "" {
		fmt.Fprintf(out, "Cleared previous owner %q of pet #%d\n", result.ClearedOwner, result.Pet.ID)
	}
	if result.ReplacedPetID != 0 {
		fmt.Fprintf(out, "Replaced previous link to pet #%d\n", result.ReplacedPetID)
	}
	fmt.Fprintf(out, "Linked child %q and pet %q\n", result.Child.FullName(), result.Pet.Nickname)
	return nil
}
