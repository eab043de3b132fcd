package types

import (
	"errors"
	"fmt"
)

// Lookup and linking errors.
var (
	ErrNotFound           = errors.New("record not found")
	ErrChildAlreadyLinked = errors.New("child is already linked to another pet")
	ErrPetAlreadyLinked   = errors.New("pet is already linked to another child")
)

// Entity validation errors.
var (
	ErrInvalidID      = errors.New("invalid record ID")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrAgeOutOfRange  = errors.New("age out of range")
	ErrInvalidSpecies = errors.New("invalid species")
)

// NotFoundError reports which entity a failed lookup was for.
// It matches ErrNotFound through errors.Is.
type NotFoundError struct {
	Entity string // "child" or "pet"
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
