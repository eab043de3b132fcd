package engine

import "github.com/dukaforge/homefriends/pkg/types"

// Search outcome statuses.
const (
	// StatusFound means the record and its linked counterpart both resolved.
	StatusFound = "found"
	// StatusUnlinked means the record exists but has no current link.
	StatusUnlinked = "unlinked"
	// StatusInconsistent means a link row references a record that no
	// longer exists. A detectable inconsistency, never a crash.
	StatusInconsistent = "inconsistent"
)

// ChildSearch is the result of SearchByChild.
type ChildSearch struct {
	Status string
	Child  types.Child

	// Pet is set when Status is StatusFound.
	Pet types.Pet

	// DanglingPetID is the stored pet reference that failed to resolve,
	// set when Status is StatusInconsistent.
	DanglingPetID int
}

// PetSearch is the result of SearchByPet.
type PetSearch struct {
	Status string
	Pet    types.Pet

	// Child is set when Status is StatusFound.
	Child types.Child

	// DanglingChildName is the stored child name that failed to resolve,
	// set when Status is StatusInconsistent.
	DanglingChildName string
}

// LinkResult is the result of a successful Link call.
type LinkResult struct {
	Child types.Child
	Pet   types.Pet

	// AlreadyLinked means the child was already linked to this exact
	// pet; the call was an idempotent no-op and nothing was written.
	AlreadyLinked bool

	// ReplacedPetID is the child's previous pet, when the link replaced
	// an existing one.
	ReplacedPetID int

	// ClearedOwner names the child whose row was blanked because it
	// previously held the pet.
	ClearedOwner string
}

// DeleteChildResult reports a cascade-delete. LinkRemoved is
// informational either way; its absence never blocks the deletion.
type DeleteChildResult struct {
	Child       types.Child
	LinkRemoved bool
}

// DeletePetResult reports an orphan-clear. LinkCleared is informational
// either way; its absence never blocks the deletion.
type DeletePetResult struct {
	Pet         types.Pet
	LinkCleared bool
}
