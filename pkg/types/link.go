// Link entity stored in the Owners table.
package types

// Link associates one child with at most one pet. A row exists for
// every child that has ever been linked; a blank pet reference means
// the child is known to the registry but currently unlinked. At most
// one row holds a given pet ID at any time, enforced procedurally by
// the registry (the previous holder is blanked before reassignment).
type Link struct {
	// ChildName is the child's "First Last" name. The registry matches
	// on the name, so duplicate names are ambiguous (known limitation).
	ChildName string

	// PetID is the linked pet's ID, or 0 when the child is unlinked.
	PetID int
}

// Linked reports whether the row currently references a pet.
func (l Link) Linked() bool {
	return l.PetID > 0
}
