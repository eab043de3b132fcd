package records

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dukaforge/homefriends/pkg/types"
)

// Children is the repository for the Children table.
// Row layout: [ID, First Name, Last Name, Age].
type Children struct {
	rs  types.RowStore
	log *slog.Logger
}

// NewChildren creates a Children repository. A nil logger discards logs.
func NewChildren(rs types.RowStore, log *slog.Logger) *Children {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Children{rs: rs, log: log}
}

// Create validates the fields, allocates the next ID, and appends the
// record. Returns the stored child including its assigned ID.
func (c *Children) Create(first, last string, age int) (types.Child, error) {
	child := types.Child{FirstName: first, LastName: last, Age: age}
	if err := child.Validate(); err != nil {
		return types.Child{}, err
	}

	id, err := NextID(c.rs, types.ChildrenTable)
	if err != nil {
		return types.Child{}, fmt.Errorf("allocate child ID: %w", err)
	}
	child.ID = id

	if err := c.rs.AppendRow(types.ChildrenTable, childToRow(child)); err != nil {
		return types.Child{}, fmt.Errorf("append child row: %w", err)
	}
	return child, nil
}

// GetByID scans the table fresh for the record with the given ID.
func (c *Children) GetByID(id int) (types.Child, error) {
	if id <= 0 {
		return types.Child{}, types.ErrInvalidID
	}

	child, _, err := c.findByID(id)
	return child, err
}

// GetByName scans for the record whose "First Last" name matches. Used
// to resolve the child behind an Owners row. When duplicate names
// exist, the first match wins (known limitation of name keying).
func (c *Children) GetByName(fullName string) (types.Child, error) {
	rows, err := c.rs.ReadAllRows(types.ChildrenTable)
	if err != nil {
		return types.Child{}, err
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		child, ok := childFromRow(row)
		if !ok {
			c.log.Warn("skipping malformed children row", "row", i+1)
			continue
		}
		if child.FullName() == fullName {
			return child, nil
		}
	}
	return types.Child{}, types.ErrNotFound
}

// DeleteByID removes the record with the given ID. The row position is
// recomputed fresh immediately before the delete so the index cannot be
// stale from an earlier read.
func (c *Children) DeleteByID(id int) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	_, rowIndex, err := c.findByID(id)
	if err != nil {
		return err
	}
	if err := c.rs.DeleteRow(types.ChildrenTable, rowIndex); err != nil {
		return fmt.Errorf("delete child row %d: %w", rowIndex, err)
	}
	return nil
}

// List returns all well-formed records. Malformed rows are skipped and
// logged, never fatal.
func (c *Children) List() ([]types.Child, error) {
	rows, err := c.rs.ReadAllRows(types.ChildrenTable)
	if err != nil {
		return nil, err
	}

	children := make([]types.Child, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		child, ok := childFromRow(row)
		if !ok {
			c.log.Warn("skipping malformed children row", "row", i+1)
			continue
		}
		children = append(children, child)
	}
	return children, nil
}

// findByID returns the record and its current 1-based row index
// (header included).
func (c *Children) findByID(id int) (types.Child, int, error) {
	rows, err := c.rs.ReadAllRows(types.ChildrenTable)
	if err != nil {
		return types.Child{}, 0, err
	}

	idStr := strconv.Itoa(id)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || row[0] != idStr {
			continue
		}
		child, ok := childFromRow(row)
		if !ok {
			c.log.Warn("skipping malformed children row", "row", i+1)
			continue
		}
		return child, i + 1, nil
	}
	return types.Child{}, 0, &types.NotFoundError{Entity: "child", ID: id}
}

func childToRow(c types.Child) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.FirstName,
		c.LastName,
		strconv.Itoa(c.Age),
	}
}

// childFromRow translates a raw row into a Child. Returns false for
// rows that do not parse.
func childFromRow(row []string) (types.Child, bool) {
	if len(row) < 4 {
		return types.Child{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil || id <= 0 {
		return types.Child{}, false
	}
	age, err := strconv.Atoi(row[3])
	if err != nil {
		return types.Child{}, false
	}
	if row[1] == "" || row[2] == "" {
		return types.Child{}, false
	}
	return types.Child{ID: id, FirstName: row[1], LastName: row[2], Age: age}, true
}
