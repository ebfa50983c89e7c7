// Package diff computes bounded shortest edit scripts over whole lines.
// Table edits are row-local, so the distance bound stays tiny in practice;
// callers fall back to replacing the whole line range when it is exceeded.
package diff

// Op identifies an edit operation on the original line sequence.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "replace"
	}
}

// Edit is one step of an edit script. Row indexes the original lines: a
// delete or replace targets that line, an insert lands before it (Row equal
// to the original length appends). Line is the inserted or replacement text
// and is empty for deletes.
type Edit struct {
	Op   Op
	Row  int
	Line string
}

// Shortest computes a minimal line-level edit script turning old into new.
// It reports false as soon as the edit distance provably exceeds
// maxDistance. Among equal-cost scripts it prefers replaces over
// delete/insert pairs, keeping the visible line churn down.
func Shortest(old, new []string, maxDistance int) ([]Edit, bool) {
	n, m := len(old), len(new)
	if maxDistance < 0 || abs(n-m) > maxDistance {
		return nil, false
	}

	const inf = 1 << 30
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		for j := range d[i] {
			d[i][j] = inf
		}
	}
	d[0][0] = 0

	// Banded Levenshtein: only cells within maxDistance of the diagonal can
	// finish within the bound.
	for i := 0; i <= n; i++ {
		lo, hi := i-maxDistance, i+maxDistance
		if lo < 0 {
			lo = 0
		}
		if hi > m {
			hi = m
		}
		best := inf
		for j := lo; j <= hi; j++ {
			c := d[i][j]
			if i > 0 && d[i-1][j]+1 < c { // delete old[i-1]
				c = d[i-1][j] + 1
			}
			if j > 0 && d[i][j-1]+1 < c { // insert new[j-1]
				c = d[i][j-1] + 1
			}
			if i > 0 && j > 0 {
				diag := d[i-1][j-1]
				if old[i-1] != new[j-1] {
					diag++ // replace
				}
				if diag < c {
					c = diag
				}
			}
			d[i][j] = c
			if c < best {
				best = c
			}
		}
		if best > maxDistance {
			return nil, false
		}
	}
	if d[n][m] > maxDistance {
		return nil, false
	}

	// Backtrack, preferring matches, then replaces, then deletes.
	var edits []Edit
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && old[i-1] == new[j-1] && d[i][j] == d[i-1][j-1]:
			i, j = i-1, j-1
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			edits = append(edits, Edit{Op: OpReplace, Row: i - 1, Line: new[j-1]})
			i, j = i-1, j-1
		case i > 0 && d[i][j] == d[i-1][j]+1:
			edits = append(edits, Edit{Op: OpDelete, Row: i - 1})
			i--
		default:
			edits = append(edits, Edit{Op: OpInsert, Row: i, Line: new[j-1]})
			j--
		}
	}
	reverse(edits)
	return edits, true
}

// Apply replays an edit script over the original lines. Edit rows refer to
// positions in the original slice, so a running delta accounts for the
// drift earlier inserts and deletes introduce.
func Apply(lines []string, edits []Edit) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	delta := 0
	for _, e := range edits {
		i := e.Row + delta
		switch e.Op {
		case OpInsert:
			out = append(out, "")
			copy(out[i+1:], out[i:])
			out[i] = e.Line
			delta++
		case OpDelete:
			out = append(out[:i], out[i+1:]...)
			delta--
		case OpReplace:
			out[i] = e.Line
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func reverse(edits []Edit) {
	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
}
