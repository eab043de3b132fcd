package main

import (
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage child records",
}

func init() {
	childCmd.AddCommand(childAddCmd)
	childCmd.AddCommand(childDeleteCmd)
	childCmd.AddCommand(childListCmd)
}

// normalizeName trims whitespace and capitalizes the first letter,
// lowercasing the rest, so "aMY" and "Amy" produce the same registry
// key.
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
