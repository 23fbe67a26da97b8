package emf

// ObjectEntry is a reusable graphics object stored in the object table.
// Apply installs the object into the current graphics state.
type ObjectEntry interface {
	Apply(p *Properties)
}

// PenObject is a pen created by a pen record.
type PenObject struct{ Pen Pen }

// Apply sets the current pen.
func (o PenObject) Apply(p *Properties) { p.Pen = o.Pen }

// BrushObject is a brush created by a brush record.
type BrushObject struct{ Brush Brush }

// Apply sets the current brush.
func (o BrushObject) Apply(p *Properties) { p.Brush = o.Brush }

// FontObject is a logical font created by a font record.
type FontObject struct{ Font Font }

// Apply sets the current font.
func (o FontObject) Apply(p *Properties) { p.Font = o.Font }

// reservedEntry occupies slot 0. Applying it changes nothing.
type reservedEntry struct{}

func (reservedEntry) Apply(*Properties) {}

// ObjectTable is the indexed store of graphics objects created by records.
//
// Records address objects starting at 1, so slot 0 holds a reserved
// placeholder inserted at construction and Len counts it. The table never
// shrinks: Delete only clears a slot, and later records may reuse it with
// Set.
type ObjectTable struct {
	entries []ObjectEntry
}

// NewObjectTable returns a table holding only the reserved slot 0.
func NewObjectTable() *ObjectTable {
	return &ObjectTable{entries: []ObjectEntry{reservedEntry{}}}
}

// Len returns the table size, including the reserved slot.
func (t *ObjectTable) Len() int {
	return len(t.entries)
}

// Add appends entry and returns its index.
func (t *ObjectTable) Add(entry ObjectEntry) int {
	t.entries = append(t.entries, entry)
	return len(t.entries) - 1
}

// Set stores entry at index, replacing any previous entry.
//
// An index below 1 behaves like Add. An index equal to Len appends. An
// index beyond Len fails with an *AddressingError: the table has not grown
// that far and records may not skip indices.
func (t *ObjectTable) Set(entry ObjectEntry, index int) error {
	switch {
	case index < 1:
		t.Add(entry)
	case index > len(t.entries):
		return &AddressingError{Op: "set", Index: index, Size: len(t.entries)}
	case index == len(t.entries):
		t.entries = append(t.entries, entry)
	default:
		t.entries[index] = entry
	}
	return nil
}

// Get returns the entry at index.
func (t *ObjectTable) Get(index int) (ObjectEntry, error) {
	if index < 0 || index >= len(t.entries) || t.entries[index] == nil {
		return nil, &AddressingError{Op: "get", Index: index, Size: len(t.entries)}
	}
	return t.entries[index], nil
}

// Delete clears the slot at index. The reserved slot cannot be deleted.
func (t *ObjectTable) Delete(index int) error {
	if index < 1 || index >= len(t.entries) {
		return &AddressingError{Op: "delete", Index: index, Size: len(t.entries)}
	}
	t.entries[index] = nil
	return nil
}

// Apply installs the entry at index into p.
func (t *ObjectTable) Apply(index int, p *Properties) error {
	e, err := t.Get(index)
	if err != nil {
		return &AddressingError{Op: "apply", Index: index, Size: len(t.entries)}
	}
	e.Apply(p)
	return nil
}
