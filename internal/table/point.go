package table

// Point is a raw text coordinate: a row index and a character column within
// that row, both zero-based.
type Point struct {
	Row    int
	Column int
}

func NewPoint(row, column int) Point {
	return Point{Row: row, Column: column}
}

// WithRow returns a copy of p with the row replaced.
func (p Point) WithRow(row int) Point {
	return Point{Row: row, Column: p.Column}
}

// WithColumn returns a copy of p with the column replaced.
func (p Point) WithColumn(column int) Point {
	return Point{Row: p.Row, Column: column}
}

// Before reports whether p comes before q in reading order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Column < q.Column)
}

// Range is a half-open text span from Start up to, but not including, End.
type Range struct {
	Start Point
	End   Point
}

func NewRange(start, end Point) Range {
	return Range{Start: start, End: end}
}
