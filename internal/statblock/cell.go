package statblock

// Cell is the editable text behind one scalar of a record.
type Cell struct {
	label     string
	value     string
	ReadOnly  bool
	Multiline bool
}

func newCell(label, value string) *Cell {
	return &Cell{label: label, value: value}
}

func (c *Cell) Label() string {
	return c.label
}

func (c *Cell) Get() string {
	return c.value
}

// Set is ignored on read-only cells.
func (c *Cell) Set(v string) {
	if c.ReadOnly {
		return
	}
	c.value = v
}
