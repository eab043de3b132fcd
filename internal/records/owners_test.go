package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/homefriends/internal/memory"
	"github.com/dukaforge/homefriends/pkg/types"
)

func seededOwners(t *testing.T, rows [][]string) (*Owners, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.Seed(types.OwnersTable, rows)
	return NewOwners(store, nil), store
}

func TestFindByChildName(t *testing.T) {
	reg, _ := seededOwners(t, [][]string{
		{"Amy Lee", "1"},
		{"Ben Ito", ""},
	})

	rowIndex, link, err := reg.FindByChildName("Amy Lee")
	require.NoError(t, err)
	assert.Equal(t, 2, rowIndex)
	assert.Equal(t, types.Link{ChildName: "Amy Lee", PetID: 1}, link)

	rowIndex, link, err = reg.FindByChildName("Ben Ito")
	require.NoError(t, err)
	assert.Equal(t, 3, rowIndex)
	assert.False(t, link.Linked())

	_, _, err = reg.FindByChildName("Cleo Ray")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFindByPetID(t *testing.T) {
	reg, _ := seededOwners(t, [][]string{
		{"Amy Lee", "1"},
		{"Ben Ito", ""},
	})

	rowIndex, link, err := reg.FindByPetID(1)
	require.NoError(t, err)
	assert.Equal(t, 2, rowIndex)
	assert.Equal(t, "Amy Lee", link.ChildName)

	_, _, err = reg.FindByPetID(9)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, _, err = reg.FindByPetID(0)
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestFindByPetIDBlankCellsNeverMatch(t *testing.T) {
	// A blank pet cell must not match any lookup, including the string
	// representation of zero.
	reg, _ := seededOwners(t, [][]string{
		{"Ben Ito", ""},
		{"Cleo Ray"},
	})

	_, _, err := reg.FindByPetID(1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpsertLinkAppendsNewRow(t *testing.T) {
	reg, store := seededOwners(t, nil)

	require.NoError(t, reg.UpsertLink("Amy Lee", 1))

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Amy Lee", "1"}, rows[1])
}

func TestUpsertLinkUpdatesInPlace(t *testing.T) {
	reg, store := seededOwners(t, [][]string{
		{"Amy Lee", "1"},
	})

	require.NoError(t, reg.UpsertLink("Amy Lee", 2))

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 2, "upsert must not create a second row")
	assert.Equal(t, []string{"Amy Lee", "2"}, rows[1])
}

func TestUpsertLinkStealsPetFromPreviousOwner(t *testing.T) {
	reg, store := seededOwners(t, [][]string{
		{"Amy Lee", "7"},
	})

	require.NoError(t, reg.UpsertLink("Cleo Ray", 7))

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Amy Lee", ""}, rows[1], "previous owner's cell must be blanked")
	assert.Equal(t, []string{"Cleo Ray", "7"}, rows[2])

	// Exactly one row may hold the pet ID.
	rowIndex, link, err := reg.FindByPetID(7)
	require.NoError(t, err)
	assert.Equal(t, 3, rowIndex)
	assert.Equal(t, "Cleo Ray", link.ChildName)
}

func TestUpsertLinkSameChildSamePet(t *testing.T) {
	reg, store := seededOwners(t, [][]string{
		{"Amy Lee", "3"},
	})

	// Re-assigning the pet to its current owner must not blank the row.
	require.NoError(t, reg.UpsertLink("Amy Lee", 3))

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Amy Lee", "3"}, rows[1])
}

func TestClearPet(t *testing.T) {
	reg, store := seededOwners(t, [][]string{
		{"Amy Lee", "3"},
		{"Ben Ito", "4"},
	})

	cleared, err := reg.ClearPet(3)
	require.NoError(t, err)
	assert.True(t, cleared)

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 3, "clearing must keep the child's row")
	assert.Equal(t, []string{"Amy Lee", ""}, rows[1])
	assert.Equal(t, []string{"Ben Ito", "4"}, rows[2])

	// Clearing an unheld pet is a reported no-op.
	cleared, err = reg.ClearPet(9)
	require.NoError(t, err)
	assert.False(t, cleared)
}

func TestRemoveChild(t *testing.T) {
	reg, store := seededOwners(t, [][]string{
		{"Amy Lee", "3"},
		{"Ben Ito", "4"},
	})

	removed, err := reg.RemoveChild("Amy Lee")
	require.NoError(t, err)
	assert.True(t, removed)

	rows, err := store.ReadAllRows(types.OwnersTable)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the whole row must be gone")
	assert.Equal(t, "Ben Ito", rows[1][0])

	removed, err = reg.RemoveChild("Cleo Ray")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestOwnersList(t *testing.T) {
	reg, _ := seededOwners(t, [][]string{
		{"Amy Lee", "3"},
		{"Ben Ito", ""},
		{""},
	})

	links, err := reg.List()
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, types.Link{ChildName: "Amy Lee", PetID: 3}, links[0])
	assert.Equal(t, types.Link{ChildName: "Ben Ito"}, links[1])
}
