package records

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dukaforge/homefriends/pkg/types"
)

// Pets is the repository for the Pets table.
// Row layout: [ID, Nickname, Age, Type].
type Pets struct {
	rs  types.RowStore
	log *slog.Logger
}

// NewPets creates a Pets repository. A nil logger discards logs.
func NewPets(rs types.RowStore, log *slog.Logger) *Pets {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pets{rs: rs, log: log}
}

// Create validates the fields, allocates the next ID, and appends the
// record. Returns the stored pet including its assigned ID.
func (p *Pets) Create(nickname string, age int, species string) (types.Pet, error) {
	pet := types.Pet{Nickname: nickname, Age: age, Species: species}
	if err := pet.Validate(); err != nil {
		return types.Pet{}, err
	}

	id, err := NextID(p.rs, types.PetsTable)
	if err != nil {
		return types.Pet{}, fmt.Errorf("allocate pet ID: %w", err)
	}
	pet.ID = id

	if err := p.rs.AppendRow(types.PetsTable, petToRow(pet)); err != nil {
		return types.Pet{}, fmt.Errorf("append pet row: %w", err)
	}
	return pet, nil
}

// GetByID scans the table fresh for the record with the given ID.
func (p *Pets) GetByID(id int) (types.Pet, error) {
	if id <= 0 {
		return types.Pet{}, types.ErrInvalidID
	}

	pet, _, err := p.findByID(id)
	return pet, err
}

// DeleteByID removes the record with the given ID. The row position is
// recomputed fresh immediately before the delete.
func (p *Pets) DeleteByID(id int) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	_, rowIndex, err := p.findByID(id)
	if err != nil {
		return err
	}
	if err := p.rs.DeleteRow(types.PetsTable, rowIndex); err != nil {
		return fmt.Errorf("delete pet row %d: %w", rowIndex, err)
	}
	return nil
}

// List returns all well-formed records. Malformed rows are skipped and
// logged, never fatal.
func (p *Pets) List() ([]types.Pet, error) {
	rows, err := p.rs.ReadAllRows(types.PetsTable)
	if err != nil {
		return nil, err
	}

	pets := make([]types.Pet, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		pet, ok := petFromRow(row)
		if !ok {
			p.log.Warn("skipping malformed pets row", "row", i+1)
			continue
		}
		pets = append(pets, pet)
	}
	return pets, nil
}

func (p *Pets) findByID(id int) (types.Pet, int, error) {
	rows, err := p.rs.ReadAllRows(types.PetsTable)
	if err != nil {
		return types.Pet{}, 0, err
	}

	idStr := strconv.Itoa(id)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || row[0] != idStr {
			continue
		}
		pet, ok := petFromRow(row)
		if !ok {
			p.log.Warn("skipping malformed pets row", "row", i+1)
			continue
		}
		return pet, i + 1, nil
	}
	return types.Pet{}, 0, &types.NotFoundError{Entity: "pet", ID: id}
}

func petToRow(p types.Pet) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Nickname,
		strconv.Itoa(p.Age),
		p.Species,
	}
}

// petFromRow translates a raw row into a Pet. Returns false for rows
// that do not parse.
func petFromRow(row []string) (types.Pet, bool) {
	if len(row) < 4 {
		return types.Pet{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil || id <= 0 {
		return types.Pet{}, false
	}
	age, err := strconv.Atoi(row[2])
	if err != nil {
		return types.Pet{}, false
	}
	if row[1] == "" {
		return types.Pet{}, false
	}
	return types.Pet{ID: id, Nickname: row[1], Age: age, Species: row[3]}, true
}
