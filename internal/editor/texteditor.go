package editor

import "github.com/kobzarvs/tedit/internal/table"

// TextEditor is the host buffer the table editor drives. A real adapter
// wraps an editor's own buffer API; Buffer is the in-memory implementation
// used by the CLI and by tests. Rows are zero-based and lines carry no
// trailing newline.
type TextEditor interface {
	GetCursorPosition() table.Point
	SetCursorPosition(p table.Point)
	// SetSelectionRange selects a half-open span; a zero-width range is
	// equivalent to placing the cursor.
	SetSelectionRange(r table.Range)
	// GetLastRow returns the index of the last line in the buffer.
	GetLastRow() int
	GetLine(row int) string
	// InsertLine inserts a line before row; row one past the last line
	// appends.
	InsertLine(row int, line string)
	DeleteLine(row int)
	// ReplaceLines replaces the half-open row range [start, end) with lines.
	ReplaceLines(start, end int, lines []string)
	// Transact batches the calls made by fn into one undo unit.
	Transact(fn func())
}
