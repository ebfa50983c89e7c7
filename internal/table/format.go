package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Options controls completion and formatting. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// MinDelimiterWidth is the shortest dash run per column. Values below 3
	// are raised to 3 so a centered delimiter cell still fits its colons.
	MinDelimiterWidth int
	// DefaultAlignment is applied to columns whose alignment is AlignNone.
	DefaultAlignment Alignment
	// Margin is prefixed to every rendered line.
	Margin string
	// TrimContent strips surrounding whitespace from cell content before
	// measuring and padding.
	TrimContent bool
	// WidthFunc measures the display width of a string. Nil means
	// runewidth.StringWidth, which accounts for wide characters.
	WidthFunc func(string) int
}

func DefaultOptions() Options {
	return Options{
		MinDelimiterWidth: minDelimiterWidth,
		DefaultAlignment:  AlignLeft,
		TrimContent:       true,
	}
}

func (o Options) normalized() Options {
	if o.MinDelimiterWidth < minDelimiterWidth {
		o.MinDelimiterWidth = minDelimiterWidth
	}
	if o.DefaultAlignment == AlignNone {
		o.DefaultAlignment = AlignLeft
	}
	if o.WidthFunc == nil {
		o.WidthFunc = runewidth.StringWidth
	}
	return o
}

// CompleteResult is the outcome of Complete. DelimiterInserted tells the
// caller to shift any focus row below the header down by one, since the
// delimiter now occupies line 1.
type CompleteResult struct {
	Table             Table
	DelimiterInserted bool
}

// Complete repairs a raw table into normalized form: rows are padded with
// empty cells to a common width, alignments are padded with AlignNone, and
// a missing delimiter row is synthesized, promoting the first line to
// header. Complete panics on a table with no rows at all; locating a table
// under the cursor is the caller's job.
func Complete(raw RawTable) CompleteResult {
	header := raw.Header
	body := raw.Body
	inserted := false
	if !raw.HasDelimiter() {
		if header == nil {
			if len(body) == 0 {
				panic("table: cannot complete a table with no rows")
			}
			h := body[0]
			header = &h
			body = body[1:]
		}
		inserted = true
	}

	width := len(raw.Alignments)
	if header != nil && header.Len() > width {
		width = header.Len()
	}
	for _, r := range body {
		if r.Len() > width {
			width = r.Len()
		}
	}
	if width == 0 {
		width = 1
	}

	var h *Row
	if header != nil {
		padded := padRow(*header, width)
		h = &padded
	}
	rows := make([]Row, len(body))
	for i, r := range body {
		rows[i] = padRow(r, width)
	}
	aligns := make([]Alignment, width)
	copy(aligns, raw.Alignments)

	return CompleteResult{
		Table:             NewTable(h, rows, aligns),
		DelimiterInserted: inserted,
	}
}

// padRow extends a row with empty cells up to width.
func padRow(r Row, width int) Row {
	if r.Len() >= width {
		return r
	}
	cells := make([]Cell, width)
	copy(cells, r.Cells())
	for i := r.Len(); i < width; i++ {
		cells[i] = NewCell("")
	}
	return NewRow(cells, r.MarginLeft())
}

// FormatResult is the outcome of Format. MarginLeft is the margin applied to
// every rendered line, reported for margin-focus offset resolution.
type FormatResult struct {
	Table      Table
	MarginLeft string
}

// Format pads every cell of a normalized table to its column's display
// width, resolving AlignNone columns to the default alignment. Column width
// is the maximum content width over the header and body, clamped to the
// minimum delimiter width, so the synthesized delimiter row lines up with
// the content around it.
func Format(t Table, opts Options) FormatResult {
	opts = opts.normalized()

	widths := make([]int, t.Width())
	for i := range widths {
		widths[i] = opts.MinDelimiterWidth
	}
	measure := func(r Row) {
		for i, c := range r.Cells() {
			if w := opts.WidthFunc(cellText(c, opts)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if h, ok := t.Header(); ok {
		measure(h)
	}
	for _, r := range t.body {
		measure(r)
	}

	formatRow := func(r Row) Row {
		cells := make([]Cell, r.Len())
		for i, c := range r.Cells() {
			a := t.alignments[i]
			if a == AlignNone {
				a = opts.DefaultAlignment
			}
			cells[i] = NewCell(" " + alignText(cellText(c, opts), widths[i], a, opts.WidthFunc) + " ")
		}
		return NewRow(cells, opts.Margin)
	}

	var header *Row
	if h, ok := t.Header(); ok {
		fh := formatRow(h)
		header = &fh
	}
	rows := make([]Row, len(t.body))
	for i, r := range t.body {
		rows[i] = formatRow(r)
	}

	return FormatResult{
		Table:      NewTable(header, rows, t.Alignments()),
		MarginLeft: opts.Margin,
	}
}

// cellText returns the text to measure and pad for a cell.
func cellText(c Cell, opts Options) string {
	if opts.TrimContent {
		return c.Content()
	}
	return c.Raw()
}

// alignText pads s to the given display width. Center splits the padding
// with the extra space on the right.
func alignText(s string, width int, a Alignment, widthOf func(string) int) string {
	pad := width - widthOf(s)
	if pad <= 0 {
		return s
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// AlterAlignment returns a table identical to t except for the alignment of
// one column. A column index outside the table is a caller error, reported
// as an ordinary error rather than a panic.
func AlterAlignment(t Table, column int, a Alignment) (Table, error) {
	if column < 0 || column >= t.Width() {
		return Table{}, fmt.Errorf("table: alignment column %d out of range [0,%d)", column, t.Width())
	}
	aligns := t.Alignments()
	aligns[column] = a
	return NewTable(t.header, t.body, aligns), nil
}
