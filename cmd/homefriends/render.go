// Output rendering helpers shared by the list and search commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dukaforge/homefriends/pkg/types"
)

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func newTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderChildren(w io.Writer, children []types.Child) {
	if len(children) == 0 {
		fmt.Fprintln(w, "(no children)")
		return
	}

	t := newTableWriter(w)
	t.AppendHeader(table.Row{"ID", "First Name", "Last Name", "Age"})
	for _, c := range children {
		t.AppendRow(table.Row{c.ID, c.FirstName, c.LastName, c.Age})
	}
	t.Render()
}

func renderPets(w io.Writer, pets []types.Pet) {
	if len(pets) == 0 {
		fmt.Fprintln(w, "(no pets)")
		return
	}

	t := newTableWriter(w)
	t.AppendHeader(table.Row{"ID", "Nickname", "Age (months)", "Type"})
	for _, p := range pets {
		t.AppendRow(table.Row{p.ID, p.Nickname, p.Age, p.Species})
	}
	t.Render()
}

func renderLinks(w io.Writer, links []types.Link) {
	if len(links) == 0 {
		fmt.Fprintln(w, "(no links)")
		return
	}

	t := newTableWriter(w)
	t.AppendHeader(table.Row{"Child Name", "Pet ID"})
	for _, l := range links {
		petID := ""
		if l.Linked() {
			petID = strconv.Itoa(l.PetID)
		}
		t.AppendRow(table.Row{l.ChildName, petID})
	}
	t.Render()
}

// parseIDArg parses a positional ID argument.
func parseIDArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q: expected a positive integer", arg)
	}
	return id, nil
}
