// Child entity stored in the Children table.
package types

// Child age bounds in years, inclusive.
const (
	ChildAgeMin = 5
	ChildAgeMax = 18
)

// Child is a record in the Children table. Children are created and
// deleted, never edited in place.
type Child struct {
	// ID is a positive integer, unique within the Children table.
	// IDs are never reused; gaps from deleted records persist.
	ID int

	// FirstName and LastName are non-empty. The Owners table references
	// a child by the combined "First Last" name, so the pair should be
	// unique (a known limitation, not enforced).
	FirstName string
	LastName  string

	// Age in years, within [ChildAgeMin, ChildAgeMax].
	Age int
}

// FullName returns the "First Last" form used as the registry key in
// the Owners table.
func (c Child) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate checks field constraints. ID is not checked; it is assigned
// by the repository on create.
func (c Child) Validate() error {
	if c.FirstName == "" || c.LastName == "" {
		return ErrEmptyName
	}
	if c.Age < ChildAgeMin || c.Age > ChildAgeMax {
		return ErrAgeOutOfRange
	}
	return nil
}
