package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/homefriends/internal/memory"
	"github.com/dukaforge/homefriends/pkg/types"
)

func TestPetsCreate(t *testing.T) {
	store := memory.NewStore()
	repo := NewPets(store, nil)

	pet, err := repo.Create("Rex", 3, types.SpeciesPuppy)
	require.NoError(t, err)
	assert.Equal(t, 1, pet.ID)

	rows, err := store.ReadAllRows(types.PetsTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Rex", "3", "puppy"}, rows[1])
}

func TestPetsCreateValidates(t *testing.T) {
	repo := NewPets(memory.NewStore(), nil)

	_, err := repo.Create("", 3, types.SpeciesPuppy)
	assert.ErrorIs(t, err, types.ErrEmptyName)

	_, err = repo.Create("Rex", 13, types.SpeciesPuppy)
	assert.ErrorIs(t, err, types.ErrAgeOutOfRange)

	_, err = repo.Create("Rex", 3, "hamster")
	assert.ErrorIs(t, err, types.ErrInvalidSpecies)
}

func TestPetsGetByID(t *testing.T) {
	store := memory.NewStore()
	store.Seed(types.PetsTable, [][]string{
		{"1", "Rex", "3", "puppy"},
		{"2", "Mia", "5", "kitty"},
	})
	repo := NewPets(store, nil)

	pet, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, types.Pet{ID: 2, Nickname: "Mia", Age: 5, Species: "kitty"}, pet)

	_, err = repo.GetByID(7)
	assert.ErrorIs(t, err, types.ErrNotFound)
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "pet", nf.Entity)
}

func TestPetsDeleteByID(t *testing.T) {
	store := memory.NewStore()
	store.Seed(types.PetsTable, [][]string{
		{"1", "Rex", "3", "puppy"},
		{"2", "Mia", "5", "kitty"},
	})
	repo := NewPets(store, nil)

	require.NoError(t, repo.DeleteByID(1))

	rows, err := store.ReadAllRows(types.PetsTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1][0])

	err = repo.DeleteByID(1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPetsListSkipsMalformedRows(t *testing.T) {
	store := memory.NewStore()
	store.Seed(types.PetsTable, [][]string{
		{"1", "Rex", "3", "puppy"},
		{"x", "Mia", "5", "kitty"},
		{"3", "Blu", "oops", "kitty"},
	})
	repo := NewPets(store, nil)

	pets, err := repo.List()
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].Nickname)
}
