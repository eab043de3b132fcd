// Package sqlite implements the SQLite RowStore backend. Rows are kept
// positionally, one JSON-encoded cell array per position, so the store
// reproduces the spreadsheet semantics of the adapter contract: 1-based
// indices including the header row, and rows shifting up on delete.
package sqlite

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/homefriends/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "homefriends.db"

var _ types.RowStore = (*Store)(nil)

// Store is a SQLite-backed RowStore.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database, applies the schema, and seeds header rows for any standard
// table that is still empty.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedHeaders(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed headers: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// seedHeaders inserts the header row for each standard table that has
// no rows yet.
func (s *Store) seedHeaders() error {
	for _, name := range types.StandardTableNames {
		var count int
		if err := s.db.QueryRow(
			"SELECT COUNT(*) FROM rows WHERE tab = ?", name,
		).Scan(&count); err != nil {
			return fmt.Errorf("counting rows of %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		cells, err := json.Marshal(types.Headers(name))
		if err != nil {
			return fmt.Errorf("encoding header of %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO rows (tab, pos, cells) VALUES (?, 1, ?)",
			name, string(cells),
		); err != nil {
			return fmt.Errorf("inserting header of %s: %w", name, err)
		}
	}
	return nil
}

// ReadAllRows returns every row of the table in position order.
func (s *Store) ReadAllRows(table string) ([][]string, error) {
	if !types.KnownTable(table) {
		return nil, types.ErrTableUnavailable
	}

	rows, err := s.db.Query(
		"SELECT cells FROM rows WHERE tab = ? ORDER BY pos", table,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrTableUnavailable, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrTableUnavailable, err)
		}
		var cells []string
		if err := json.Unmarshal([]byte(encoded), &cells); err != nil {
			return nil, fmt.Errorf("%w: decoding row: %v", types.ErrTableUnavailable, err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrTableUnavailable, err)
	}
	return out, nil
}

// AppendRow adds a row at the next position of the table.
func (s *Store) AppendRow(table string, row []string) error {
	if !types.KnownTable(table) {
		return types.ErrTableUnavailable
	}

	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: encoding row: %v", types.ErrWriteRejected, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO rows (tab, pos, cells)
		 VALUES (?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM rows WHERE tab = ?), ?)`,
		table, table, string(cells),
	); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	return nil
}

// UpdateCell overwrites a single cell. The row is widened with blank
// cells when colIndex is past its current width, matching spreadsheet
// behavior.
func (s *Store) UpdateCell(table string, rowIndex, colIndex int, value string) error {
	if !types.KnownTable(table) {
		return types.ErrTableUnavailable
	}
	if rowIndex < 1 || colIndex < 1 {
		return types.ErrIndexOutOfRange
	}

	var encoded string
	err := s.db.QueryRow(
		"SELECT cells FROM rows WHERE tab = ? AND pos = ?", table, rowIndex,
	).Scan(&encoded)
	if err == sql.ErrNoRows {
		return types.ErrIndexOutOfRange
	}
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}

	var cells []string
	if err := json.Unmarshal([]byte(encoded), &cells); err != nil {
		return fmt.Errorf("%w: decoding row: %v", types.ErrWriteRejected, err)
	}
	for len(cells) < colIndex {
		cells = append(cells, "")
	}
	cells[colIndex-1] = value

	updated, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("%w: encoding row: %v", types.ErrWriteRejected, err)
	}
	if _, err := s.db.Exec(
		"UPDATE rows SET cells = ? WHERE tab = ? AND pos = ?",
		string(updated), table, rowIndex,
	); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	return nil
}

// DeleteRow removes a row and shifts later rows up by one position.
func (s *Store) DeleteRow(table string, rowIndex int) error {
	if !types.KnownTable(table) {
		return types.ErrTableUnavailable
	}
	if rowIndex < 1 {
		return types.ErrIndexOutOfRange
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"DELETE FROM rows WHERE tab = ? AND pos = ?", table, rowIndex,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	if affected == 0 {
		return types.ErrIndexOutOfRange
	}

	if _, err := tx.Exec(
		"UPDATE rows SET pos = pos - 1 WHERE tab = ? AND pos > ?",
		table, rowIndex,
	); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWriteRejected, err)
	}
	return nil
}
