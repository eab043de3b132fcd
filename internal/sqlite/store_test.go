package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/homefriends/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenSeedsHeaders(t *testing.T) {
	s := openTestStore(t)

	for _, name := range types.StandardTableNames {
		rows, err := s.ReadAllRows(name)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, types.Headers(name), rows[0])
	}
}

func TestOpenIsIdempotentOnExistingData(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"1", "Amy", "Lee", "10"}))
	require.NoError(t, s.Close())

	// Reopening must keep existing rows and not duplicate headers.
	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.ReadAllRows(types.ChildrenTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Amy", "Lee", "10"}, rows[1])
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}

func TestUnknownTableUnavailable(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadAllRows("Hamsters")
	assert.ErrorIs(t, err, types.ErrTableUnavailable)

	err = s.AppendRow("Hamsters", []string{"1"})
	assert.ErrorIs(t, err, types.ErrTableUnavailable)
}

func TestAppendPreservesOrder(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.AppendRow(types.PetsTable, []string{"1", "Rex", "3", "puppy"}))
	require.NoError(t, s.AppendRow(types.PetsTable, []string{"2", "Mia", "5", "kitty"}))

	rows, err := s.ReadAllRows(types.PetsTable)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestUpdateCell(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.AppendRow(types.OwnersTable, []string{"Amy Lee", "1"}))

	require.NoError(t, s.UpdateCell(types.OwnersTable, 2, 2, ""))

	rows, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy Lee", ""}, rows[1])
}

func TestUpdateCellWidensRow(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.AppendRow(types.OwnersTable, []string{"Amy Lee"}))

	require.NoError(t, s.UpdateCell(types.OwnersTable, 2, 2, "7"))

	rows, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy Lee", "7"}, rows[1])
}

func TestUpdateCellOutOfRange(t *testing.T) {
	s := openTestStore(t)

	err := s.UpdateCell(types.OwnersTable, 5, 1, "x")
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	err = s.UpdateCell(types.OwnersTable, 0, 1, "x")
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestDeleteRowShiftsPositions(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"1", "Amy", "Lee", "10"}))
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"2", "Ben", "Ito", "8"}))
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"3", "Cleo", "Ray", "12"}))

	require.NoError(t, s.DeleteRow(types.ChildrenTable, 2))

	rows, err := s.ReadAllRows(types.ChildrenTable)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "3", rows[2][0])

	// Appending after a delete must land after the last remaining row.
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"4", "Dan", "Oz", "9"}))
	rows, err = s.ReadAllRows(types.ChildrenTable)
	require.NoError(t, err)
	assert.Equal(t, "4", rows[3][0])
}

func TestDeleteRowOutOfRange(t *testing.T) {
	s := openTestStore(t)

	err := s.DeleteRow(types.ChildrenTable, 9)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	err = s.DeleteRow(types.ChildrenTable, 0)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}
