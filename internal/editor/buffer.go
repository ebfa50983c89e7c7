package editor

import "github.com/kobzarvs/tedit/internal/table"

// Buffer is an in-memory TextEditor over a slice of lines. It is the host
// stand-in for the CLI and for tests.
type Buffer struct {
	lines     []string
	cursor    table.Point
	selection *table.Range
}

func NewBuffer(lines ...string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := &Buffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

func (b *Buffer) GetCursorPosition() table.Point {
	return b.cursor
}

func (b *Buffer) SetCursorPosition(p table.Point) {
	b.cursor = p
	b.selection = nil
}

func (b *Buffer) SetSelectionRange(r table.Range) {
	b.cursor = r.Start
	sel := r
	b.selection = &sel
}

// Selection returns the active selection, if any.
func (b *Buffer) Selection() (table.Range, bool) {
	if b.selection == nil {
		return table.Range{}, false
	}
	return *b.selection, true
}

func (b *Buffer) GetLastRow() int {
	return len(b.lines) - 1
}

func (b *Buffer) GetLine(row int) string {
	return b.lines[row]
}

func (b *Buffer) InsertLine(row int, line string) {
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = line
}

func (b *Buffer) DeleteLine(row int) {
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

func (b *Buffer) ReplaceLines(start, end int, lines []string) {
	out := make([]string, 0, len(b.lines)-(end-start)+len(lines))
	out = append(out, b.lines[:start]...)
	out = append(out, lines...)
	out = append(out, b.lines[end:]...)
	b.lines = out
}

func (b *Buffer) Transact(fn func()) {
	fn()
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
