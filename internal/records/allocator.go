package records

import (
	"strconv"

	"github.com/dukaforge/homefriends/pkg/types"
)

// NextID returns the next unique integer ID for a table: one past the
// highest parseable ID in the first column, or 1 when no valid ID
// exists. IDs are never reused, so gaps from deleted records persist.
// Rows with a missing or unparseable ID are skipped, never fatal.
func NextID(rs types.RowStore, table string) (int, error) {
	rows, err := rs.ReadAllRows(table)
	if err != nil {
		return 0, err
	}

	maxID := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 {
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil || id <= 0 {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}
