package engine

import (
	"fmt"

	"github.com/dukaforge/homefriends/pkg/types"
)

// ChildLinkConflict is returned by Link when the child is already
// linked to a different pet and no override was given. It matches
// types.ErrChildAlreadyLinked through errors.Is.
type ChildLinkConflict struct {
	Child         types.Child
	ExistingPetID int
}

func (e *ChildLinkConflict) Error() string {
	return fmt.Sprintf("child %q is already linked to pet #%d", e.Child.FullName(), e.ExistingPetID)
}

func (e *ChildLinkConflict) Is(target error) bool {
	return target == types.ErrChildAlreadyLinked
}

// PetLinkConflict is returned by Link when the pet is already linked to
// a different child and no override was given. It matches
// types.ErrPetAlreadyLinked through errors.Is.
type PetLinkConflict struct {
	Pet       types.Pet
	OwnerName string
}

func (e *PetLinkConflict) Error() string {
	return fmt.Sprintf("pet %q (#%d) is already linked to %q", e.Pet.Nickname, e.Pet.ID, e.OwnerName)
}

func (e *PetLinkConflict) Is(target error) bool {
	return target == types.ErrPetAlreadyLinked
}

// StepError reports which step of a multi-step mutation failed. The
// store offers no transactions, so steps before the failed one have
// been applied and are not rolled back; the operation ID gives the
// operator a handle for manual reconciliation.
type StepError struct {
	Op   string // operation name: link, delete-child, delete-pet
	OpID string // unique ID of this invocation
	Step string // the step that failed
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s operation %s failed at step %q: %v", e.Op, e.OpID, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
