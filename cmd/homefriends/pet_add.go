// Pet add command creates a new pet record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/homefriends/pkg/types"
)

var (
	petNickname string
	petAge      int
	petSpecies  string
)

var petAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new pet record",
	Long: `Add creates a new pet record with an auto-assigned ID.

The species is "puppy" or "kitty"; the shorthands "p" and "k" are
accepted.

Example:
  homefriends pet add --name Rex --age 3 --species puppy
  homefriends pet add --name Mia --age 5 --species k`,
	RunE: runPetAdd,
}

func init() {
	petAddCmd.Flags().StringVar(&petNickname, "name", "", "pet's nickname (required)")
	petAddCmd.Flags().IntVar(&petAge, "age", 0, "pet's age in months, 0-12 (required)")
	petAddCmd.Flags().StringVar(&petSpecies, "species", "", "puppy or kitty (required)")
	_ = petAddCmd.MarkFlagRequired("name")
	_ = petAddCmd.MarkFlagRequired("age")
	_ = petAddCmd.MarkFlagRequired("species")
}

func runPetAdd(cmd *cobra.Command, args []string) error {
	species, err := types.ParseSpecies(petSpecies)
	if err != nil {
		return fmt.Errorf("species %q: %w", petSpecies, err)
	}

	pet, err := eng.Pets().Create(normalizeName(petNickname), petAge, species)
	if err != nil {
		return fmt.Errorf("create pet: %w", err)
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), pet)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pet %q (%s) added with ID %d\n", pet.Nickname, pet.Species, pet.ID)
	return nil
}
