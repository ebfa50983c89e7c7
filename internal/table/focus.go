package table

import "unicode/utf8"

// Focus is the logical cursor coordinate that stays stable across
// reformatting. Row is the line index within the table (0 = header,
// 1 = delimiter row when a header exists, then body lines). Column is the
// cell index on that line; -1 addresses the left margin and any value at or
// beyond the table width addresses the text right of the last pipe. Offset
// is a rune offset into the focused cell's raw (padded) text, or into the
// margin text when the column is outside the grid.
type Focus struct {
	Row    int
	Column int
	Offset int
}

func NewFocus(row, column, offset int) Focus {
	return Focus{Row: row, Column: column, Offset: offset}
}

// WithRow returns a copy of f with the row replaced.
func (f Focus) WithRow(row int) Focus {
	return Focus{Row: row, Column: f.Column, Offset: f.Offset}
}

// WithColumn returns a copy of f with the column replaced.
func (f Focus) WithColumn(column int) Focus {
	return Focus{Row: f.Row, Column: column, Offset: f.Offset}
}

// WithOffset returns a copy of f with the intra-cell offset replaced.
func (f Focus) WithOffset(offset int) Focus {
	return Focus{Row: f.Row, Column: f.Column, Offset: offset}
}

// TranslateFocus resolves the intra-cell offset of f against the table
// layout produced by formatting. The offset recorded in f is relative to the
// cell padding in before; the returned focus carries the offset that lands
// on the same content rune once the padding of after is in place. When the
// focus falls outside the grid the offset falls back to the end of the left
// margin (column < 0) or to zero (right margin).
func TranslateFocus(before, after Table, f Focus, marginLeft string) Focus {
	oldCell, okOld := before.FocusedCell(f)
	newCell, okNew := after.FocusedCell(f)
	if okOld && okNew {
		contentOffset := oldCell.ComputeContentOffset(f.Offset)
		if n := newCell.ContentLen(); contentOffset > n {
			contentOffset = n
		}
		return f.WithOffset(newCell.ComputeRawOffset(contentOffset))
	}
	if f.Column < 0 {
		return f.WithOffset(utf8.RuneCountInString(marginLeft))
	}
	return f.WithOffset(0)
}
