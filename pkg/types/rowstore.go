package types

import "errors"

// RowStore is the narrow contract to the external tabular datastore.
// The store has no native foreign keys and no transactions; every method
// is an independent, immediately-applied operation.
//
// Row and column indices are 1-based and include the header row, so the
// first data row of a table is index 2. Callers must recompute indices
// fresh before acting on them: rows shift when earlier rows are deleted.
type RowStore interface {
	// ReadAllRows returns every row of the table in order, header first.
	// Returns ErrTableUnavailable if the table is missing or unreachable.
	ReadAllRows(table string) ([][]string, error)

	// AppendRow adds a row at the bottom of the table.
	// Returns ErrWriteRejected if the store refuses the write.
	AppendRow(table string, row []string) error

	// UpdateCell overwrites a single cell.
	// Returns ErrIndexOutOfRange if rowIndex does not address an existing
	// row, and ErrWriteRejected if the store refuses the write.
	UpdateCell(table string, rowIndex, colIndex int, value string) error

	// DeleteRow removes a row; later rows shift up by one.
	// Returns ErrIndexOutOfRange or ErrWriteRejected as for UpdateCell.
	DeleteRow(table string, rowIndex int) error
}

// RowStore adapter errors.
var (
	ErrTableUnavailable = errors.New("table unavailable")
	ErrWriteRejected    = errors.New("write rejected")
	ErrIndexOutOfRange  = errors.New("row or column index out of range")
)
