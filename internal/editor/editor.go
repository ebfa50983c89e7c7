// Package editor implements table editing commands over a host text buffer.
// Each command is a single logical unit: locate the table under the cursor,
// repair and reformat it, translate the cursor through the new layout, and
// patch only the lines that changed.
package editor

import (
	"strings"

	"github.com/kobzarvs/tedit/internal/diff"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/table"
)

// DefaultMaxEditDistance bounds the line diff used to patch a table in
// place. Table commands touch at most a couple of lines; anything beyond
// this is applied as a whole-range replace instead.
const DefaultMaxEditDistance = 3

// TableEditor drives table editing commands against a host TextEditor.
// Every command is a silent no-op when the cursor is not inside a table.
type TableEditor struct {
	text            TextEditor
	opts            table.Options
	maxEditDistance int
}

func New(text TextEditor, opts table.Options) *TableEditor {
	return &TableEditor{
		text:            text,
		opts:            opts,
		maxEditDistance: DefaultMaxEditDistance,
	}
}

// SetMaxEditDistance overrides the diff bound. A negative bound disables
// diffing entirely, forcing whole-range replaces.
func (e *TableEditor) SetMaxEditDistance(n int) {
	e.maxEditDistance = n
}

// tableInfo describes the table found under the cursor.
type tableInfo struct {
	startRow int
	lines    []string
	raw      table.RawTable
	focus    table.Focus
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}

// CursorIsInTable reports whether the cursor sits on a table line.
func (e *TableEditor) CursorIsInTable() bool {
	pos := e.text.GetCursorPosition()
	return pos.Row >= 0 && pos.Row <= e.text.GetLastRow() && isTableLine(e.text.GetLine(pos.Row))
}

// findTable scans out from the cursor row over contiguous table lines and
// parses them.
func (e *TableEditor) findTable() (tableInfo, bool) {
	pos := e.text.GetCursorPosition()
	last := e.text.GetLastRow()
	if pos.Row < 0 || pos.Row > last || !isTableLine(e.text.GetLine(pos.Row)) {
		return tableInfo{}, false
	}
	top := pos.Row
	for top > 0 && isTableLine(e.text.GetLine(top-1)) {
		top--
	}
	bottom := pos.Row
	for bottom < last && isTableLine(e.text.GetLine(bottom+1)) {
		bottom++
	}
	lines := make([]string, 0, bottom-top+1)
	for r := top; r <= bottom; r++ {
		lines = append(lines, e.text.GetLine(r))
	}
	raw := table.ReadTable(lines)
	return tableInfo{
		startRow: top,
		lines:    lines,
		raw:      raw,
		focus:    raw.FocusOfPosition(pos, top),
	}, true
}

// complete normalizes the raw table and shifts the focus row past the
// delimiter when one had to be inserted.
func (e *TableEditor) complete(ti tableInfo) (table.Table, table.Focus) {
	res := table.Complete(ti.raw)
	focus := ti.focus
	if res.DelimiterInserted && focus.Row > 0 {
		focus = focus.WithRow(focus.Row + 1)
	}
	return res.Table, focus
}

// commit formats t, patches the buffer with a bounded diff, and places the
// cursor (or a cell selection) at the focus translated into the formatted
// layout.
func (e *TableEditor) commit(ti tableInfo, t table.Table, focus table.Focus, selectCell bool) {
	res := table.Format(t, e.opts)
	newFocus := table.TranslateFocus(t, res.Table, focus, res.MarginLeft)
	newLines := res.Table.Lines()
	e.text.Transact(func() {
		e.updateLines(ti.startRow, ti.lines, newLines)
		e.moveToFocus(res.Table, newFocus, ti.startRow, selectCell)
	})
}

// updateLines patches [startRow, startRow+len(old)) into new, using the
// bounded edit script when it exists and a whole-range replace otherwise.
func (e *TableEditor) updateLines(startRow int, old, new []string) {
	edits, ok := diff.Shortest(old, new, e.maxEditDistance)
	if !ok {
		logger.Debug("table diff above bound, replacing range",
			"rows", len(old), "bound", e.maxEditDistance)
		e.text.ReplaceLines(startRow, startRow+len(old), new)
		return
	}
	delta := 0
	for _, ed := range edits {
		row := startRow + ed.Row + delta
		switch ed.Op {
		case diff.OpInsert:
			e.text.InsertLine(row, ed.Line)
			delta++
		case diff.OpDelete:
			e.text.DeleteLine(row)
			delta--
		case diff.OpReplace:
			e.text.ReplaceLines(row, row+1, []string{ed.Line})
		}
	}
}

// moveToFocus selects the focused cell's content, or places the cursor when
// selection is not requested or the cell has nothing to select.
func (e *TableEditor) moveToFocus(t table.Table, f table.Focus, startRow int, selectCell bool) {
	if selectCell {
		if r, ok := t.SelectionRangeOfFocus(f, startRow); ok {
			e.text.SetSelectionRange(r)
			return
		}
	}
	if p, ok := t.PositionOfFocus(f, startRow); ok {
		e.text.SetCursorPosition(p)
	}
}

// Format reformats the table under the cursor in place, keeping the cursor
// anchored to the content it was on.
func (e *TableEditor) Format() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	e.commit(ti, t, focus, false)
}

// Escape formats the table and moves the cursor to the line below it,
// appending a blank line when the table sits at the end of the buffer.
func (e *TableEditor) Escape() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, _ := e.complete(ti)
	newLines := table.Format(t, e.opts).Table.Lines()
	e.text.Transact(func() {
		e.updateLines(ti.startRow, ti.lines, newLines)
		row := ti.startRow + len(newLines)
		if row > e.text.GetLastRow() {
			e.text.InsertLine(row, "")
		}
		e.text.SetCursorPosition(table.NewPoint(row, 0))
	})
}

// AlignColumn sets the alignment of the focused column and reformats. A
// focus outside the grid changes nothing but still formats the table.
func (e *TableEditor) AlignColumn(a table.Alignment) {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	if focus.Column >= 0 && focus.Column < t.Width() {
		altered, err := table.AlterAlignment(t, focus.Column, a)
		if err != nil {
			logger.Error("alter alignment", "column", focus.Column, "err", err)
			return
		}
		t = altered
	}
	e.commit(ti, t, focus, false)
}

// SelectCell formats the table and selects the focused cell's content.
func (e *TableEditor) SelectCell() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	e.commit(ti, t, focus, true)
}

// contentLines returns the line indices of rows holding content cells, the
// delimiter row excluded.
func contentLines(t table.Table) []int {
	lines := make([]int, 0, t.LineCount())
	for i := 0; i < t.LineCount(); i++ {
		if i != t.DelimiterLine() {
			lines = append(lines, i)
		}
	}
	return lines
}

// contentIndex returns the index within contentLines of the content row at
// or nearest above the focus row, so a focus on the delimiter counts as the
// header.
func contentIndex(lines []int, row int) int {
	idx := 0
	for i, ln := range lines {
		if ln <= row {
			idx = i
		}
	}
	return idx
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveFocus moves the logical focus cell-wise, skipping the delimiter row
// vertically and clamping at the table edges, then selects the target cell.
func (e *TableEditor) MoveFocus(rowOffset, colOffset int) {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	next := focus
	if rowOffset != 0 {
		lines := contentLines(t)
		idx := clamp(contentIndex(lines, next.Row)+rowOffset, 0, len(lines)-1)
		next = next.WithRow(lines[idx])
	}
	if colOffset != 0 {
		next = next.WithColumn(clamp(next.Column+colOffset, 0, t.Width()-1))
	}
	moved := next.Row != focus.Row || next.Column != focus.Column
	if moved {
		next = next.WithOffset(0)
	}
	e.commit(ti, t, next, moved)
}

// NextCell moves the focus one cell to the right, appending a new empty
// column when the focus is already on the last one. The caller-held session
// keeps tab traversal anchored while selections move the host cursor; a nil
// session disables the smart cursor.
func (e *TableEditor) NextCell(s *SessionState) {
	ti, ok := e.findTable()
	if !ok {
		s.Invalidate()
		return
	}
	t, focus := e.complete(ti)
	anchor := table.NewPoint(ti.startRow, 0)
	if s.resume(anchor) {
		focus = *s.LastFocus
	} else {
		s.begin(anchor, focus)
	}
	if focus.Row == t.DelimiterLine() {
		focus = focus.WithRow(focus.Row - 1)
	}

	var next table.Focus
	switch {
	case focus.Column < 0:
		next = focus.WithColumn(0).WithOffset(0)
	case focus.Column >= t.Width()-1:
		t = insertColumnAt(t, t.Width())
		next = focus.WithColumn(t.Width() - 1).WithOffset(0)
	default:
		next = focus.WithColumn(focus.Column + 1).WithOffset(0)
	}
	s.remember(next)
	e.commit(ti, t, next, true)
}

// PreviousCell moves the focus one cell to the left, wrapping to the last
// cell of the previous content row. At the very first cell it is a no-op.
func (e *TableEditor) PreviousCell(s *SessionState) {
	ti, ok := e.findTable()
	if !ok {
		s.Invalidate()
		return
	}
	t, focus := e.complete(ti)
	anchor := table.NewPoint(ti.startRow, 0)
	if s.resume(anchor) {
		focus = *s.LastFocus
	} else {
		s.begin(anchor, focus)
	}
	if focus.Row == t.DelimiterLine() {
		focus = focus.WithRow(focus.Row - 1)
	}

	lines := contentLines(t)
	idx := contentIndex(lines, focus.Row)
	var next table.Focus
	switch {
	case focus.Column > 0:
		next = focus.WithColumn(focus.Column - 1).WithOffset(0)
	case idx > 0:
		next = table.NewFocus(lines[idx-1], t.Width()-1, 0)
	default:
		return
	}
	s.remember(next)
	e.commit(ti, t, next, true)
}

// NextRow moves the focus to the next body row, appending an empty row at
// the bottom of the table. With an active session the focus returns to the
// column the traversal started in; otherwise it goes to the first column.
func (e *TableEditor) NextRow(s *SessionState) {
	ti, ok := e.findTable()
	if !ok {
		s.Invalidate()
		return
	}
	t, focus := e.complete(ti)
	anchor := table.NewPoint(ti.startRow, 0)
	if s.resume(anchor) {
		focus = *s.LastFocus
	} else {
		s.begin(anchor, focus)
	}

	col := 0
	if s != nil && s.Active && s.StartFocus != nil {
		col = clamp(s.StartFocus.Column, 0, t.Width()-1)
	}
	lines := contentLines(t)
	idx := contentIndex(lines, focus.Row)
	var next table.Focus
	if idx+1 < len(lines) {
		next = table.NewFocus(lines[idx+1], col, 0)
	} else {
		t = appendBodyRow(t)
		next = table.NewFocus(t.LineCount()-1, col, 0)
	}
	s.remember(next)
	e.commit(ti, t, next, true)
}

// InsertRow inserts an empty body row above the focused row (at the top of
// the body when the focus is on the header or delimiter) and moves the focus
// into it.
func (e *TableEditor) InsertRow() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	idx := bodyIndex(focus.Row)
	idx = clamp(idx, 0, t.BodyLen())
	t = insertBodyRowAt(t, idx)
	e.commit(ti, t, table.NewFocus(idx+2, 0, 0), true)
}

// DeleteRow deletes the focused body row. The header and delimiter are
// protected; deleting the only body row clears its cells instead so the
// table keeps at least one body row.
func (e *TableEditor) DeleteRow() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	idx := bodyIndex(focus.Row)
	if idx < 0 || idx >= t.BodyLen() {
		return
	}
	if t.BodyLen() == 1 {
		t = replaceBodyRow(t, 0, emptyRow(t.Width()))
	} else {
		t = deleteBodyRowAt(t, idx)
		idx = clamp(idx, 0, t.BodyLen()-1)
	}
	next := table.NewFocus(idx+2, clamp(focus.Column, 0, t.Width()-1), 0)
	e.commit(ti, t, next, false)
}

// MoveRow moves the focused body row by offset, clamped within the body.
func (e *TableEditor) MoveRow(offset int) {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	idx := bodyIndex(focus.Row)
	if idx < 0 || idx >= t.BodyLen() {
		return
	}
	to := clamp(idx+offset, 0, t.BodyLen()-1)
	if to != idx {
		t = moveBodyRow(t, idx, to)
	}
	e.commit(ti, t, focus.WithRow(to+2), false)
}

// InsertColumn inserts an empty column at the focused column (at the left
// edge when the focus is in the margin) and moves the focus into it.
func (e *TableEditor) InsertColumn() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	col := clamp(focus.Column, 0, t.Width())
	t = insertColumnAt(t, col)
	row := focus.Row
	if row == t.DelimiterLine() {
		row = 0
	}
	e.commit(ti, t, table.NewFocus(row, col, 0), true)
}

// DeleteColumn deletes the focused column. The table keeps at least one
// column: deleting the only one clears its cells instead.
func (e *TableEditor) DeleteColumn() {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	col := focus.Column
	if col < 0 || col >= t.Width() {
		return
	}
	if t.Width() == 1 {
		t = clearColumn(t, 0)
	} else {
		t = deleteColumnAt(t, col)
		col = clamp(col, 0, t.Width()-1)
	}
	row := focus.Row
	if row == t.DelimiterLine() {
		row = 0
	}
	e.commit(ti, t, table.NewFocus(row, col, 0), false)
}

// MoveColumn moves the focused column by offset, clamped within the table.
func (e *TableEditor) MoveColumn(offset int) {
	ti, ok := e.findTable()
	if !ok {
		return
	}
	t, focus := e.complete(ti)
	col := focus.Column
	if col < 0 || col >= t.Width() {
		return
	}
	to := clamp(col+offset, 0, t.Width()-1)
	if to != col {
		t = moveColumnTo(t, col, to)
	}
	e.commit(ti, t, focus.WithColumn(to), false)
}

// bodyIndex maps a focus row (line index) to a body row index. Header and
// delimiter lines come out negative so callers can clamp or reject them.
func bodyIndex(row int) int {
	return row - 2
}
