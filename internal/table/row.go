package table

import "strings"

// Row is an ordered sequence of cells plus the text to the left of the
// opening pipe on its line.
type Row struct {
	cells      []Cell
	marginLeft string
}

func NewRow(cells []Cell, marginLeft string) Row {
	return Row{cells: cells, marginLeft: marginLeft}
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.cells)
}

// Cell returns the i-th cell.
func (r Row) Cell(i int) Cell {
	return r.cells[i]
}

// Cells returns the row's cells. The slice must not be mutated.
func (r Row) Cells() []Cell {
	return r.cells
}

// MarginLeft returns the text preceding the opening pipe.
func (r Row) MarginLeft() string {
	return r.marginLeft
}

// Text renders the row back to a raw line.
func (r Row) Text() string {
	var sb strings.Builder
	sb.WriteString(r.marginLeft)
	sb.WriteString("|")
	for _, c := range r.cells {
		sb.WriteString(c.Raw())
		sb.WriteString("|")
	}
	return sb.String()
}
