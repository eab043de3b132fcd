// Child add command creates a new child record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	childFirstName string
	childLastName  string
	childAge       int
)

var childAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new child record",
	Long: `Add creates a new child record with an auto-assigned ID.

Example:
  homefriends child add --first Amy --last Lee --age 10`,
	RunE: runChildAdd,
}

func init() {
	childAddCmd.Flags().StringVar(&childFirstName, "first", "", "child's first name (required)")
	childAddCmd.Flags().StringVar(&childLastName, "last", "", "child's last name (required)")
	childAddCmd.Flags().IntVar(&childAge, "age", 0, "child's age in years, 5-18 (required)")
	_ = childAddCmd.MarkFlagRequired("first")
	_ = childAddCmd.MarkFlagRequired("last")
	_ = childAddCmd.MarkFlagRequired("age")
}

func runChildAdd(cmd *cobra.Command, args []string) error {
	child, err := eng.Children().Create(
		normalizeName(childFirstName),
		normalizeName(childLastName),
		childAge,
	)
	if err != nil {
		return fmt.Errorf("create child: %w", err)
	}

	if flagJSON {
		return renderJSON(cmd.OutOrStdout(), child)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Child %q added with ID %d\n", child.FullName(), child.ID)
	return nil
}
