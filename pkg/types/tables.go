package types

// Standard table names in the backing datastore.
const (
	ChildrenTable = "Children"
	PetsTable     = "Pets"
	OwnersTable   = "Owners"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	ChildrenTable,
	PetsTable,
	OwnersTable,
}

// tableHeaders holds the fixed header row of each standard table.
// Column layouts are positional; code addresses cells by index, the
// headers exist for human readers of the raw tables.
var tableHeaders = map[string][]string{
	ChildrenTable: {"ID", "First Name", "Last Name", "Age"},
	PetsTable:     {"ID", "Nickname", "Age", "Type"},
	OwnersTable:   {"Child Name", "Pet ID"},
}

// Headers returns the header row for a standard table, or nil if the
// name is not a standard table.
func Headers(table string) []string {
	h, ok := tableHeaders[table]
	if !ok {
		return nil
	}
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// KnownTable reports whether name is one of the standard tables.
func KnownTable(name string) bool {
	_, ok := tableHeaders[name]
	return ok
}
