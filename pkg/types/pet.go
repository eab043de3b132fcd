// Pet entity stored in the Pets table.
package types

import "strings"

// Pet age bounds in months, inclusive.
const (
	PetAgeMin = 0
	PetAgeMax = 12
)

// Pet species values.
const (
	SpeciesPuppy = "puppy"
	SpeciesKitty = "kitty"
)

// Pet is a record in the Pets table.
type Pet struct {
	// ID is a positive integer, unique within the Pets table.
	// IDs are never reused; gaps from deleted records persist.
	ID int

	// Nickname is non-empty.
	Nickname string

	// Age in months, within [PetAgeMin, PetAgeMax].
	Age int

	// Species is SpeciesPuppy or SpeciesKitty.
	Species string
}

// ParseSpecies normalizes a species value, accepting the full names and
// the single-letter shorthands "p" and "k".
func ParseSpecies(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", SpeciesPuppy:
		return SpeciesPuppy, nil
	case "k", SpeciesKitty:
		return SpeciesKitty, nil
	default:
		return "", ErrInvalidSpecies
	}
}

// Validate checks field constraints. ID is not checked; it is assigned
// by the repository on create.
func (p Pet) Validate() error {
	if p.Nickname == "" {
		return ErrEmptyName
	}
	if p.Age < PetAgeMin || p.Age > PetAgeMax {
		return ErrAgeOutOfRange
	}
	if p.Species != SpeciesPuppy && p.Species != SpeciesKitty {
		return ErrInvalidSpecies
	}
	return nil
}
