package table

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single table cell. The raw text is everything between the two
// pipes that delimit the cell, padding included; Content strips that
// padding. Cells are immutable values.
type Cell struct {
	raw string
}

func NewCell(raw string) Cell {
	return Cell{raw: raw}
}

// Raw returns the cell text exactly as it appears between the pipes.
func (c Cell) Raw() string {
	return c.raw
}

// RawLen returns the length of the raw text in runes.
func (c Cell) RawLen() int {
	return utf8.RuneCountInString(c.raw)
}

// Content returns the cell text with surrounding whitespace removed.
func (c Cell) Content() string {
	return strings.TrimSpace(c.raw)
}

// ContentLen returns the length of Content in runes.
func (c Cell) ContentLen() int {
	return utf8.RuneCountInString(c.Content())
}

// PaddingLeft returns the number of leading whitespace runes in the raw text.
func (c Cell) PaddingLeft() int {
	return c.RawLen() - utf8.RuneCountInString(strings.TrimLeft(c.raw, " \t"))
}

// ComputeContentOffset maps a rune offset into the raw (padded) cell text to
// an offset into Content, clamping to the content bounds.
func (c Cell) ComputeContentOffset(rawOffset int) int {
	pad := c.PaddingLeft()
	n := c.ContentLen()
	switch {
	case rawOffset < pad:
		return 0
	case rawOffset < pad+n:
		return rawOffset - pad
	default:
		return n
	}
}

// ComputeRawOffset is the inverse of ComputeContentOffset: it maps an offset
// into Content back to an offset into the raw cell text.
func (c Cell) ComputeRawOffset(contentOffset int) int {
	if contentOffset < 0 {
		contentOffset = 0
	}
	if n := c.ContentLen(); contentOffset > n {
		contentOffset = n
	}
	return c.PaddingLeft() + contentOffset
}
