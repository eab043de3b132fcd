// Package engine implements the cross-table consistency operations:
// link, replace-link, cascade-delete, orphan-clear, and bidirectional
// search over the Children, Pets, and Owners tables.
//
// Every mutating operation is a sequence of independent writes against
// a store with no transactions. Each step is applied immediately; when
// a later step fails, earlier steps are not rolled back. The failure is
// reported as a StepError naming the step and carrying an operation ID
// so the operator can reconcile the tables manually.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukaforge/homefriends/internal/records"
	"github.com/dukaforge/homefriends/pkg/types"
)

// Engine coordinates the three record tables. It keeps no state beyond
// its collaborators; every call reads the tables fresh.
type Engine struct {
	children *records.Children
	pets     *records.Pets
	owners   *records.Owners
	log      *slog.Logger
}

// New creates an Engine over a RowStore. A nil logger discards logs.
func New(rs types.RowStore, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		children: records.NewChildren(rs, log),
		pets:     records.NewPets(rs, log),
		owners:   records.NewOwners(rs, log),
		log:      log,
	}
}

// Children returns the child repository, for callers that need plain
// record access (add, list).
func (e *Engine) Children() *records.Children { return e.children }

// Pets returns the pet repository.
func (e *Engine) Pets() *records.Pets { return e.pets }

// Owners returns the link registry.
func (e *Engine) Owners() *records.Owners { return e.owners }

// Link associates a child with a pet. Both sides are resolved by ID
// first; a NotFoundError reports which side is missing.
//
// Without override, two conflicts are signaled instead of resolved,
// child conflict first: ChildLinkConflict when the child is linked to a
// different pet, then PetLinkConflict when the pet belongs to a
// different child. The caller must re-invoke with override to replace.
// Re-linking the same child to the same pet is an idempotent no-op.
func (e *Engine) Link(childID, petID int, override bool) (LinkResult, error) {
	child, err := e.children.GetByID(childID)
	if err != nil {
		return LinkResult{}, err
	}
	pet, err := e.pets.GetByID(petID)
	if err != nil {
		return LinkResult{}, err
	}
	name := child.FullName()

	_, existing, err := e.owners.FindByChildName(name)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return LinkResult{}, fmt.Errorf("find existing child link: %w", err)
	}
	if existing.Linked() {
		if existing.PetID == pet.ID {
			return LinkResult{Child: child, Pet: pet, AlreadyLinked: true}, nil
		}
		if !override {
			return LinkResult{}, &ChildLinkConflict{Child: child, ExistingPetID: existing.PetID}
		}
	}

	_, petLink, err := e.owners.FindByPetID(pet.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return LinkResult{}, fmt.Errorf("find existing pet link: %w", err)
	}
	clearedOwner := ""
	if petLink.ChildName != "" && petLink.ChildName != name {
		if !override {
			return LinkResult{}, &PetLinkConflict{Pet: pet, OwnerName: petLink.ChildName}
		}
		clearedOwner = petLink.ChildName
	}

	opID := uuid.NewString()
	if err := e.owners.UpsertLink(name, pet.ID); err != nil {
		return LinkResult{}, &StepError{Op: "link", OpID: opID, Step: "upsert link", Err: err}
	}

	result := LinkResult{Child: child, Pet: pet, ClearedOwner: clearedOwner}
	if existing.Linked() && existing.PetID != pet.ID {
		result.ReplacedPetID = existing.PetID
	}
	e.log.Info("linked child and pet",
		"op_id", opID, "child_id", child.ID, "pet_id", pet.ID,
		"replaced_pet_id", result.ReplacedPetID, "cleared_owner", clearedOwner)
	return result, nil
}

// SearchByChild resolves the pet linked to a child. A missing link row
// or a blank pet cell yields StatusUnlinked; a pet reference that no
// longer resolves yields StatusInconsistent with the dangling ID.
func (e *Engine) SearchByChild(childID int) (ChildSearch, error) {
	child, err := e.children.GetByID(childID)
	if err != nil {
		return ChildSearch{}, err
	}

	_, link, err := e.owners.FindByChildName(child.FullName())
	if errors.Is(err, types.ErrNotFound) {
		return ChildSearch{Status: StatusUnlinked, Child: child}, nil
	}
	if err != nil {
		return ChildSearch{}, fmt.Errorf("find link by child name: %w", err)
	}
	if !link.Linked() {
		return ChildSearch{Status: StatusUnlinked, Child: child}, nil
	}

	pet, err := e.pets.GetByID(link.PetID)
	if errors.Is(err, types.ErrNotFound) {
		e.log.Warn("link references a pet that no longer exists",
			"child", child.FullName(), "pet_id", link.PetID)
		return ChildSearch{Status: StatusInconsistent, Child: child, DanglingPetID: link.PetID}, nil
	}
	if err != nil {
		return ChildSearch{}, fmt.Errorf("resolve linked pet: %w", err)
	}
	return ChildSearch{Status: StatusFound, Child: child, Pet: pet}, nil
}

// SearchByPet resolves the child linked to a pet, mirroring
// SearchByChild: the stored child name that no longer resolves yields
// StatusInconsistent with the dangling name.
func (e *Engine) SearchByPet(petID int) (PetSearch, error) {
	pet, err := e.pets.GetByID(petID)
	if err != nil {
		return PetSearch{}, err
	}

	_, link, err := e.owners.FindByPetID(pet.ID)
	if errors.Is(err, types.ErrNotFound) {
		return PetSearch{Status: StatusUnlinked, Pet: pet}, nil
	}
	if err != nil {
		return PetSearch{}, fmt.Errorf("find link by pet ID: %w", err)
	}

	child, err := e.children.GetByName(link.ChildName)
	if errors.Is(err, types.ErrNotFound) {
		e.log.Warn("link references a child that no longer exists",
			"pet_id", pet.ID, "child_name", link.ChildName)
		return PetSearch{Status: StatusInconsistent, Pet: pet, DanglingChildName: link.ChildName}, nil
	}
	if err != nil {
		return PetSearch{}, fmt.Errorf("resolve linked child: %w", err)
	}
	return PetSearch{Status: StatusFound, Pet: pet, Child: child}, nil
}

// DeleteChild removes a child record and cascade-deletes its link row.
// Whether a link row existed is informational either way and never
// blocks the deletion. When the second step fails the child is already
// gone; the StepError says so precisely.
func (e *Engine) DeleteChild(childID int) (DeleteChildResult, error) {
	child, err := e.children.GetByID(childID)
	if err != nil {
		return DeleteChildResult{}, err
	}

	opID := uuid.NewString()
	if err := e.children.DeleteByID(child.ID); err != nil {
		return DeleteChildResult{}, &StepError{Op: "delete-child", OpID: opID, Step: "delete child record", Err: err}
	}

	removed, err := e.owners.RemoveChild(child.FullName())
	if err != nil {
		return DeleteChildResult{Child: child}, &StepError{Op: "delete-child", OpID: opID, Step: "remove link row (child record already deleted)", Err: err}
	}
	if !removed {
		e.log.Info("no link row to remove for deleted child",
			"op_id", opID, "child", child.FullName())
	}
	return DeleteChildResult{Child: child, LinkRemoved: removed}, nil
}

// DeletePet removes a pet record and orphan-clears its link: only the
// pet cell of the Owners row is blanked, the child's row remains.
func (e *Engine) DeletePet(petID int) (DeletePetResult, error) {
	pet, err := e.pets.GetByID(petID)
	if err != nil {
		return DeletePetResult{}, err
	}

	opID := uuid.NewString()
	if err := e.pets.DeleteByID(pet.ID); err != nil {
		return DeletePetResult{}, &StepError{Op: "delete-pet", OpID: opID, Step: "delete pet record", Err: err}
	}

	cleared, err := e.owners.ClearPet(pet.ID)
	if err != nil {
		return DeletePetResult{Pet: pet}, &StepError{Op: "delete-pet", OpID: opID, Step: "clear link cell (pet record already deleted)", Err: err}
	}
	if !cleared {
		e.log.Info("no link row to clear for deleted pet",
			"op_id", opID, "pet_id", pet.ID)
	}
	return DeletePetResult{Pet: pet, LinkCleared: cleared}, nil
}
