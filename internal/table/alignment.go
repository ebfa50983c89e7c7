package table

// Alignment is a column alignment as encoded in the delimiter row.
type Alignment int

const (
	// AlignNone means the delimiter row carries no explicit marker for the
	// column; rendering falls back to the configured default alignment.
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "none"
	}
}
