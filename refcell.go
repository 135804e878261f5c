package pulse

// RefID addresses a [RefCell] within a [GraphNode]'s register table.
type RefID int

// RefCell is a mutable value slot addressed by a stable id. It is owned by
// the graph that first registers it and read/written by any node whose
// register table maps a local index to it.
type RefCell struct {
	ID      RefID
	current any
}

// NewRefCell creates a ref cell holding the given initial value.
func NewRefCell(id RefID, initial any) *RefCell {
	return &RefCell{ID: id, current: initial}
}

// Read returns the cell's current value. Object-typed values keep their
// reference identity across reads, never a deep copy, so check{changed}
// can rely on identity comparison.
func (c *RefCell) Read() any {
	return c.current
}

func (c *RefCell) write(v any) {
	c.current = v
}
