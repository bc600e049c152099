// Package layout records data-layout facts for produced IR types.
// Later lowering passes consume the table; conversion populates it as a side
// channel, one entry per distinct IR type.
package layout

import (
	"github.com/typelift/typelift/liftgen/csem"
	"github.com/typelift/typelift/liftgen/ir"
)

// Entry holds the layout facts of one IR type.
type Entry struct {
	// Type is the IR type the facts belong to.
	Type ir.Type

	// Size and Align are in bytes, computed from the original source type
	// on the conversion target.
	Size  int
	Align int
}

// Table is a memoizing map from produced IR type to layout facts.
// Keying is structural: two IR types with the same rendering share an entry.
type Table struct {
	entries map[string]Entry
	order   []string
}

// NewTable returns an empty layout table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// TryEmplace records layout facts for out, computed from the source type src
// on the given target. It is an idempotent upsert: if an entry for out
// already exists the call is a no-op, so converting equivalent input twice
// never duplicates or corrupts the table.
func (t *Table) TryEmplace(out ir.Type, src csem.Type, target *csem.TargetInfo) error {
	key := out.String()
	if _, ok := t.entries[key]; ok {
		return nil
	}
	size, err := target.SizeOf(src)
	if err != nil {
		return err
	}
	align, err := target.AlignOf(src)
	if err != nil {
		return err
	}
	t.entries[key] = Entry{Type: out, Size: size, Align: align}
	t.order = append(t.order, key)
	return nil
}

// Lookup returns the entry for an IR type, if recorded.
func (t *Table) Lookup(out ir.Type) (Entry, bool) {
	e, ok := t.entries[out.String()]
	return e, ok
}

// Len returns the number of recorded entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns all entries in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.entries[key])
	}
	return out
}
