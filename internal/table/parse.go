package table

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// delimiterCellRE matches one cell of a delimiter row: at least one dash
// with optional alignment colons on either side.
var delimiterCellRE = regexp.MustCompile(`^\s*(:?)-+(:?)\s*$`)

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// RawTable is the parser's output before normalization: rows may be ragged
// and the alignments are nil when the source had no delimiter row. Complete
// repairs a RawTable into a Table.
type RawTable struct {
	Header     *Row
	Body       []Row
	Alignments []Alignment

	// delimiter is the delimiter row as parsed, kept so that a cursor
	// sitting on it still resolves against the text the user actually sees.
	delimiter Row
}

// HasDelimiter reports whether the source contained a delimiter row.
func (t RawTable) HasDelimiter() bool {
	return t.Alignments != nil
}

// lineRows returns all parsed rows in source line order, the delimiter row
// included when one was present.
func (t RawTable) lineRows() []Row {
	if t.Header == nil {
		return t.Body
	}
	rows := make([]Row, 0, 2+len(t.Body))
	rows = append(rows, *t.Header, t.delimiter)
	return append(rows, t.Body...)
}

// ReadTable parses an ordered run of raw lines into a RawTable. Lines are
// consumed while their first non-whitespace character is a pipe; parsing
// stops at the first line that is not a table row. If the second line
// matches the delimiter grammar it becomes the alignments and the first line
// becomes the header; otherwise every line is a body row.
func ReadTable(lines []string) RawTable {
	var rows []Row
	for _, line := range lines {
		row, ok := readRow(line)
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	if len(rows) >= 2 {
		if aligns, ok := parseDelimiterRow(rows[1]); ok {
			header := rows[0]
			return RawTable{
				Header:     &header,
				Body:       rows[2:],
				Alignments: aligns,
				delimiter:  rows[1],
			}
		}
	}
	return RawTable{Body: rows}
}

// readRow splits one raw line into cells on unescaped pipes. Leading
// whitespace becomes the row margin; the empty fragments produced by the
// leading and trailing pipes are dropped.
func readRow(line string) (Row, bool) {
	rest := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(rest, "|") {
		return Row{}, false
	}
	margin := line[:len(line)-len(rest)]
	segs := splitCells(strings.TrimRight(rest, " \t"))
	segs = segs[1:] // the leading pipe always yields an empty first fragment
	if n := len(segs); n > 0 && segs[n-1] == "" {
		segs = segs[:n-1] // trailing pipe
	}
	cells := make([]Cell, len(segs))
	for i, s := range segs {
		cells[i] = NewCell(s)
	}
	return NewRow(cells, margin), true
}

// splitCells splits s on pipes, treating a backslash-escaped pipe as cell
// content. The backslash stays in the content so raw offsets line up with
// the source text.
func splitCells(s string) []string {
	var cells []string
	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(cells, cur.String())
}

// parseDelimiterRow converts a row into per-column alignments if every cell
// matches the delimiter grammar.
func parseDelimiterRow(row Row) ([]Alignment, bool) {
	if row.Len() == 0 {
		return nil, false
	}
	aligns := make([]Alignment, row.Len())
	for i, c := range row.Cells() {
		m := delimiterCellRE.FindStringSubmatch(c.Raw())
		if m == nil {
			return nil, false
		}
		switch {
		case m[1] == ":" && m[2] == ":":
			aligns[i] = AlignCenter
		case m[1] == ":":
			aligns[i] = AlignLeft
		case m[2] == ":":
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}

// FocusOfPosition locates the logical focus for a raw cursor position,
// given the buffer row the table starts at. A position on a pipe resolves to
// the cell on its left; the leading pipe resolves to the margin.
func (t RawTable) FocusOfPosition(p Point, startRow int) Focus {
	line := p.Row - startRow
	rows := t.lineRows()
	if line < 0 || line >= len(rows) {
		return NewFocus(line, -1, 0)
	}
	row := rows[line]
	margin := runeLen(row.MarginLeft())
	if p.Column <= margin {
		return NewFocus(line, -1, p.Column)
	}
	pos := margin + 1
	for i, cell := range row.Cells() {
		n := cell.RawLen()
		if p.Column <= pos+n {
			return NewFocus(line, i, p.Column-pos)
		}
		pos += n + 1
	}
	return NewFocus(line, row.Len(), p.Column-pos)
}
