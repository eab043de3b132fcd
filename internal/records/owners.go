package records

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dukaforge/homefriends/pkg/types"
)

// Owners table column indices (1-based, per the RowStore contract).
const (
	ownersChildNameCol = 1
	ownersPetIDCol     = 2
)

// Owners is the link registry over the Owners table.
// Row layout: [Child Name, Pet ID]; a blank Pet ID cell means the child
// is known but currently unlinked.
//
// Every operation scans the table fresh. The registry keeps no index:
// the table may have been mutated externally between calls.
type Owners struct {
	rs  types.RowStore
	log *slog.Logger
}

// NewOwners creates an Owners registry. A nil logger discards logs.
func NewOwners(rs types.RowStore, log *slog.Logger) *Owners {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Owners{rs: rs, log: log}
}

// FindByChildName returns the link row for a child and its current
// 1-based row index (header included). Returns ErrNotFound when the
// child has no row.
func (o *Owners) FindByChildName(name string) (int, types.Link, error) {
	rows, err := o.rs.ReadAllRows(types.OwnersTable)
	if err != nil {
		return 0, types.Link{}, err
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || row[0] != name {
			continue
		}
		return i + 1, linkFromRow(row), nil
	}
	return 0, types.Link{}, types.ErrNotFound
}

// FindByPetID returns the link row holding a pet ID and its current
// 1-based row index. Blank pet cells never match. Returns ErrNotFound
// when no row holds the ID.
func (o *Owners) FindByPetID(petID int) (int, types.Link, error) {
	if petID <= 0 {
		return 0, types.Link{}, types.ErrInvalidID
	}

	rows, err := o.rs.ReadAllRows(types.OwnersTable)
	if err != nil {
		return 0, types.Link{}, err
	}

	idStr := strconv.Itoa(petID)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < ownersPetIDCol || row[ownersPetIDCol-1] != idStr {
			continue
		}
		return i + 1, linkFromRow(row), nil
	}
	return 0, types.Link{}, types.ErrNotFound
}

// UpsertLink assigns a pet to a child. When another child currently
// holds the pet, that row's pet cell is blanked first as a separate
// clearing write; a failure between the two writes leaves the old link
// cleared and the new one unset, never a corrupted row. The child's row
// is updated in place when it exists, appended otherwise.
func (o *Owners) UpsertLink(childName string, petID int) error {
	if petID <= 0 {
		return types.ErrInvalidID
	}

	childRow, _, err := o.FindByChildName(childName)
	if err != nil && err != types.ErrNotFound {
		return fmt.Errorf("find link by child name: %w", err)
	}

	prevRow, prevLink, err := o.FindByPetID(petID)
	if err != nil && err != types.ErrNotFound {
		return fmt.Errorf("find link by pet ID: %w", err)
	}
	if prevRow != 0 && prevRow != childRow {
		o.log.Info("clearing previous owner of pet",
			"pet_id", petID, "previous_owner", prevLink.ChildName)
		if err := o.rs.UpdateCell(types.OwnersTable, prevRow, ownersPetIDCol, ""); err != nil {
			return fmt.Errorf("clear previous owner row %d: %w", prevRow, err)
		}
	}

	if childRow != 0 {
		if err := o.rs.UpdateCell(types.OwnersTable, childRow, ownersPetIDCol, strconv.Itoa(petID)); err != nil {
			return fmt.Errorf("update link row %d: %w", childRow, err)
		}
		return nil
	}
	if err := o.rs.AppendRow(types.OwnersTable, []string{childName, strconv.Itoa(petID)}); err != nil {
		return fmt.Errorf("append link row: %w", err)
	}
	return nil
}

// ClearPet blanks the pet cell of the row holding a pet ID, keeping the
// child's row. Returns false when no row held the ID, which is an
// informational no-op, not an error.
func (o *Owners) ClearPet(petID int) (bool, error) {
	rowIndex, _, err := o.FindByPetID(petID)
	if err == types.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find link by pet ID: %w", err)
	}

	if err := o.rs.UpdateCell(types.OwnersTable, rowIndex, ownersPetIDCol, ""); err != nil {
		return false, fmt.Errorf("clear pet cell in row %d: %w", rowIndex, err)
	}
	return true, nil
}

// RemoveChild deletes the entire link row for a child; the row carries
// no meaning once the child is gone. Returns false when no row existed,
// which is an informational no-op, not an error.
func (o *Owners) RemoveChild(childName string) (bool, error) {
	rowIndex, _, err := o.FindByChildName(childName)
	if err == types.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find link by child name: %w", err)
	}

	if err := o.rs.DeleteRow(types.OwnersTable, rowIndex); err != nil {
		return false, fmt.Errorf("delete link row %d: %w", rowIndex, err)
	}
	return true, nil
}

// List returns all link rows in table order.
func (o *Owners) List() ([]types.Link, error) {
	rows, err := o.rs.ReadAllRows(types.OwnersTable)
	if err != nil {
		return nil, err
	}

	links := make([]types.Link, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || row[0] == "" {
			o.log.Warn("skipping malformed owners row", "row", i+1)
			continue
		}
		links = append(links, linkFromRow(row))
	}
	return links, nil
}

// linkFromRow translates a raw row into a Link. A missing or
// unparseable pet cell yields an unlinked row rather than an error.
func linkFromRow(row []string) types.Link {
	link := types.Link{ChildName: row[0]}
	if len(row) >= ownersPetIDCol {
		if id, err := strconv.Atoi(row[ownersPetIDCol-1]); err == nil && id > 0 {
			link.PetID = id
		}
	}
	return link
}
