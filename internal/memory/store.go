// Package memory implements an in-memory RowStore backend. It backs the
// "memory" config backend and serves as the test double for the record
// and engine layers.
package memory

import (
	"sync"

	"github.com/dukaforge/homefriends/pkg/types"
)

var _ types.RowStore = (*Store)(nil)

// Store holds the standard tables in memory, header rows included.
// Indices follow the RowStore contract: 1-based, header at index 1.
type Store struct {
	mu     sync.Mutex
	tables map[string][][]string
}

// NewStore creates a Store with the standard tables seeded with their
// header rows.
func NewStore() *Store {
	s := &Store{tables: make(map[string][][]string)}
	for _, name := range types.StandardTableNames {
		s.tables[name] = [][]string{types.Headers(name)}
	}
	return s
}

// Seed replaces the data rows of a table, keeping the header. Intended
// for test setup.
func (s *Store) Seed(table string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := [][]string{types.Headers(table)}
	for _, row := range rows {
		seeded = append(seeded, cloneRow(row))
	}
	s.tables[table] = seeded
}

// ReadAllRows returns a copy of every row of the table, header first.
func (s *Store) ReadAllRows(table string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tables[table]
	if !ok {
		return nil, types.ErrTableUnavailable
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = cloneRow(row)
	}
	return out, nil
}

// AppendRow adds a row at the bottom of the table.
func (s *Store) AppendRow(table string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tables[table]
	if !ok {
		return types.ErrTableUnavailable
	}
	s.tables[table] = append(rows, cloneRow(row))
	return nil
}

// UpdateCell overwrites a single cell. Rows are widened with blank cells
// when colIndex is past the current row width, matching spreadsheet
// behavior.
func (s *Store) UpdateCell(table string, rowIndex, colIndex int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tables[table]
	if !ok {
		return types.ErrTableUnavailable
	}
	if rowIndex < 1 || rowIndex > len(rows) || colIndex < 1 {
		return types.ErrIndexOutOfRange
	}

	row := rows[rowIndex-1]
	for len(row) < colIndex {
		row = append(row, "")
	}
	row[colIndex-1] = value
	rows[rowIndex-1] = row
	return nil
}

// DeleteRow removes a row; later rows shift up by one.
func (s *Store) DeleteRow(table string, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.tables[table]
	if !ok {
		return types.ErrTableUnavailable
	}
	if rowIndex < 1 || rowIndex > len(rows) {
		return types.ErrIndexOutOfRange
	}

	s.tables[table] = append(rows[:rowIndex-1], rows[rowIndex:]...)
	return nil
}

// Close releases nothing; it exists so all backends share a lifecycle.
func (s *Store) Close() error {
	return nil
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}
