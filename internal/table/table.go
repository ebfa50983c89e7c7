package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// minDelimiterWidth is the shortest dash run a delimiter cell can hold and
// still satisfy the delimiter grammar with both alignment colons in place.
const minDelimiterWidth = 3

// Table is a normalized table: every row holds exactly Width cells and there
// is one alignment entry per column. The delimiter row is not stored as
// content; it is synthesized from the alignments on render. Construct tables
// through Complete, which is the one place raw irregularity is repaired, or
// through NewTable when the invariants already hold.
type Table struct {
	header     *Row
	body       []Row
	alignments []Alignment
}

// NewTable builds a normalized table. Violating the shape invariants is a
// programming error and panics: zero columns, any row whose length differs
// from the alignment count, or a missing header with an empty body.
func NewTable(header *Row, body []Row, alignments []Alignment) Table {
	width := len(alignments)
	if width == 0 {
		panic("table: zero columns")
	}
	if header == nil && len(body) == 0 {
		panic("table: no header and no body rows")
	}
	if header != nil && header.Len() != width {
		panic(fmt.Sprintf("table: header has %d cells, want %d", header.Len(), width))
	}
	for i, r := range body {
		if r.Len() != width {
			panic(fmt.Sprintf("table: body row %d has %d cells, want %d", i, r.Len(), width))
		}
	}
	return Table{header: header, body: body, alignments: alignments}
}

// Width returns the number of columns.
func (t Table) Width() int {
	return len(t.alignments)
}

// Header returns the header row, if present.
func (t Table) Header() (Row, bool) {
	if t.header == nil {
		return Row{}, false
	}
	return *t.header, true
}

// Body returns a copy of the body rows.
func (t Table) Body() []Row {
	body := make([]Row, len(t.body))
	copy(body, t.body)
	return body
}

// BodyLen returns the number of body rows.
func (t Table) BodyLen() int {
	return len(t.body)
}

// Alignments returns a copy of the per-column alignments.
func (t Table) Alignments() []Alignment {
	aligns := make([]Alignment, len(t.alignments))
	copy(aligns, t.alignments)
	return aligns
}

// LineCount returns the number of lines the table renders to, the delimiter
// row included.
func (t Table) LineCount() int {
	if t.header == nil {
		return len(t.body)
	}
	return 2 + len(t.body)
}

// DelimiterLine returns the line index of the delimiter row, or -1 when the
// table has no header (and therefore no delimiter).
func (t Table) DelimiterLine() int {
	if t.header == nil {
		return -1
	}
	return 1
}

// rowAt resolves a line index to a row, synthesizing the delimiter row.
func (t Table) rowAt(line int) (Row, bool) {
	if line < 0 {
		return Row{}, false
	}
	if t.header != nil {
		switch {
		case line == 0:
			return *t.header, true
		case line == 1:
			return t.delimiterRow(), true
		case line-2 < len(t.body):
			return t.body[line-2], true
		}
		return Row{}, false
	}
	if line < len(t.body) {
		return t.body[line], true
	}
	return Row{}, false
}

// delimiterWidths computes the dash run per column so that the delimiter
// lines up with the content cells around it: the raw cell width minus the
// single space of padding on either side, never below the grammar minimum.
func (t Table) delimiterWidths() []int {
	widths := make([]int, len(t.alignments))
	measure := func(r Row) {
		for i, c := range r.Cells() {
			if w := runewidth.StringWidth(c.Content()); w > widths[i] {
				widths[i] = w
			}
			if w := runewidth.StringWidth(c.Raw()) - 2; w > widths[i] {
				widths[i] = w
			}
		}
	}
	if t.header != nil {
		measure(*t.header)
	}
	for _, r := range t.body {
		measure(r)
	}
	for i := range widths {
		if widths[i] < minDelimiterWidth {
			widths[i] = minDelimiterWidth
		}
	}
	return widths
}

// delimiterRow synthesizes the delimiter row from the alignments.
func (t Table) delimiterRow() Row {
	widths := t.delimiterWidths()
	cells := make([]Cell, len(t.alignments))
	for i, a := range t.alignments {
		cells[i] = NewCell(" " + delimiterText(a, widths[i]) + " ")
	}
	margin := ""
	if t.header != nil {
		margin = t.header.MarginLeft()
	}
	return NewRow(cells, margin)
}

// delimiterText renders one delimiter cell body of the given dash width.
func delimiterText(a Alignment, width int) string {
	switch a {
	case AlignLeft:
		return ":" + strings.Repeat("-", width-1)
	case AlignRight:
		return strings.Repeat("-", width-1) + ":"
	case AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

// FocusedCell returns the cell the focus addresses. It reports false when
// the focus row or column falls outside the grid.
func (t Table) FocusedCell(f Focus) (Cell, bool) {
	row, ok := t.rowAt(f.Row)
	if !ok || f.Column < 0 || f.Column >= row.Len() {
		return Cell{}, false
	}
	return row.Cell(f.Column), true
}

// cellStart returns the rune column at which the raw text of cell i begins
// on the rendered line.
func cellStart(row Row, i int) int {
	pos := runeLen(row.MarginLeft()) + 1
	for j := 0; j < i; j++ {
		pos += row.Cell(j).RawLen() + 1
	}
	return pos
}

// PositionOfFocus converts a focus back to a raw text position, given the
// buffer row the table starts at. It reports false when the focus row is
// outside the table.
func (t Table) PositionOfFocus(f Focus, startRow int) (Point, bool) {
	row, ok := t.rowAt(f.Row)
	if !ok {
		return Point{}, false
	}
	r := startRow + f.Row
	switch {
	case f.Column < 0:
		return NewPoint(r, f.Offset), true
	case f.Column < row.Len():
		return NewPoint(r, cellStart(row, f.Column)+f.Offset), true
	default:
		return NewPoint(r, cellStart(row, row.Len())+f.Offset), true
	}
}

// SelectionRangeOfFocus returns the span of the focused cell's content. It
// reports false when the focus is outside the grid or the content is empty,
// in which case there is nothing meaningful to select and callers fall back
// to PositionOfFocus.
func (t Table) SelectionRangeOfFocus(f Focus, startRow int) (Range, bool) {
	row, ok := t.rowAt(f.Row)
	if !ok || f.Column < 0 || f.Column >= row.Len() {
		return Range{}, false
	}
	cell := row.Cell(f.Column)
	if cell.Content() == "" {
		return Range{}, false
	}
	r := startRow + f.Row
	start := cellStart(row, f.Column) + cell.PaddingLeft()
	return NewRange(NewPoint(r, start), NewPoint(r, start+cell.ContentLen())), true
}

// Lines renders the table back to raw lines, the synthesized delimiter row
// included.
func (t Table) Lines() []string {
	lines := make([]string, 0, t.LineCount())
	for i := 0; i < t.LineCount(); i++ {
		row, _ := t.rowAt(i)
		lines = append(lines, row.Text())
	}
	return lines
}
