package element

// Table maps named-type names to their defining elements.
//
// Tables are treated as immutable values: Resolve and Without return new
// tables and never modify the receiver.
type Table map[string]*Element

// NewTable builds a table from elements keyed by their ID.
// Elements without an ID are skipped; later duplicates win.
func NewTable(elements ...*Element) Table {
	t := make(Table, len(elements))
	for _, el := range elements {
		if el != nil && el.ID != "" {
			t[el.ID] = el
		}
	}
	return t
}

// Lookup returns the element registered under name.
func (t Table) Lookup(name string) (*Element, bool) {
	el, ok := t[name]
	return el, ok && el != nil
}

// Without returns a copy of t that does not contain name.
func (t Table) Without(name string) Table {
	out := make(Table, len(t))
	for k, v := range t {
		if k != name {
			out[k] = v
		}
	}
	return out
}

// Resolve returns the element registered under name together with the
// sub-table to use for any further recursion. The sub-table excludes name so
// a self-referential definition cannot be expanded twice along one path.
func (t Table) Resolve(name string) (*Element, Table, bool) {
	el, ok := t.Lookup(name)
	if !ok {
		return nil, t, false
	}
	return el, t.Without(name), true
}
