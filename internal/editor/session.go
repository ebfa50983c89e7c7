package editor

import "github.com/kobzarvs/tedit/internal/table"

// SessionState is the caller-held smart-cursor record used by NextCell,
// PreviousCell, and NextRow. A host keeps one per buffer, so concurrent
// editing sessions in different buffers cannot interfere, and calls
// Invalidate whenever the cursor leaves the table it was captured in.
type SessionState struct {
	Active bool
	// TablePos anchors the session to the table's start position.
	TablePos *table.Point
	// StartFocus is the focus at the moment the session began; NextRow
	// returns to its column.
	StartFocus *table.Focus
	// LastFocus is the focus the previous traversal command landed on.
	LastFocus *table.Focus
}

// Invalidate clears the session.
func (s *SessionState) Invalidate() {
	if s == nil {
		return
	}
	*s = SessionState{}
}

// resume reports whether the session continues a traversal of the table
// starting at pos.
func (s *SessionState) resume(pos table.Point) bool {
	return s != nil && s.Active && s.TablePos != nil && *s.TablePos == pos && s.LastFocus != nil
}

// begin starts a new session anchored at pos with the given start focus.
func (s *SessionState) begin(pos table.Point, start table.Focus) {
	if s == nil {
		return
	}
	s.Active = true
	s.TablePos = &pos
	s.StartFocus = &start
	s.LastFocus = nil
}

// remember records the focus a traversal command landed on.
func (s *SessionState) remember(f table.Focus) {
	if s == nil {
		return
	}
	s.LastFocus = &f
}
