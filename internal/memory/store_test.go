package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/homefriends/pkg/types"
)

func TestNewStoreSeedsHeaders(t *testing.T) {
	s := NewStore()

	for _, name := range types.StandardTableNames {
		rows, err := s.ReadAllRows(name)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, types.Headers(name), rows[0])
	}
}

func TestUnknownTableUnavailable(t *testing.T) {
	s := NewStore()

	_, err := s.ReadAllRows("Hamsters")
	assert.ErrorIs(t, err, types.ErrTableUnavailable)

	err = s.AppendRow("Hamsters", []string{"1"})
	assert.ErrorIs(t, err, types.ErrTableUnavailable)
}

func TestAppendAndRead(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"1", "Amy", "Lee", "10"}))
	require.NoError(t, s.AppendRow(types.ChildrenTable, []string{"2", "Ben", "Ito", "8"}))

	rows, err := s.ReadAllRows(types.ChildrenTable)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "Amy", "Lee", "10"}, rows[1])
	assert.Equal(t, []string{"2", "Ben", "Ito", "8"}, rows[2])
}

func TestReadReturnsCopies(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendRow(types.OwnersTable, []string{"Amy Lee", "1"}))

	rows, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	rows[1][1] = "99"

	again, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	assert.Equal(t, "1", again[1][1])
}

func TestUpdateCell(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendRow(types.OwnersTable, []string{"Amy Lee", "1"}))

	require.NoError(t, s.UpdateCell(types.OwnersTable, 2, 2, ""))

	rows, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy Lee", ""}, rows[1])
}

func TestUpdateCellWidensRow(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendRow(types.OwnersTable, []string{"Amy Lee"}))

	require.NoError(t, s.UpdateCell(types.OwnersTable, 2, 2, "7"))

	rows, err := s.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amy Lee", "7"}, rows[1])
}

func TestUpdateCellOutOfRange(t *testing.T) {
	s := NewStore()

	err := s.UpdateCell(types.OwnersTable, 2, 1, "x")
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	err = s.UpdateCell(types.OwnersTable, 0, 1, "x")
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestDeleteRowShiftsLaterRows(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendRow(types.PetsTable, []string{"1", "Rex", "3", "puppy"}))
	require.NoError(t, s.AppendRow(types.PetsTable, []string{"2", "Mia", "5", "kitty"}))

	require.NoError(t, s.DeleteRow(types.PetsTable, 2))

	rows, err := s.ReadAllRows(types.PetsTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1][0], "second pet should shift into the deleted slot")

	err = s.DeleteRow(types.PetsTable, 5)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}
