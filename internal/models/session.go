package models

import (
	"time"
)

// SessionStats persist across rounds until the process exits
type SessionStats struct {
	// WinCount is the number of rounds guessed exactly
	WinCount int `json:"win_count"`

	// RoundsPlayed is the number of rounds that reached RoundOver
	RoundsPlayed int `json:"rounds_played"`
}

// Session is the single explicitly owned game state: the current round,
// its drawing and the running tally.
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// CreatedAt is when the session was started
	CreatedAt time.Time `json:"created_at"`

	Round   Round        `json:"round"`
	Drawing Drawing      `json:"drawing"`
	Stats   SessionStats `json:"stats"`

	// ActivePointers maps a captured pointer to its stroke index in Drawing
	ActivePointers map[int64]int `json:"active_pointers,omitempty"`
}

// ActiveStroke returns the stroke captured by the pointer, if any
func (s *Session) ActiveStroke(pointerID int64) (*Stroke, bool) {
	idx, ok := s.ActivePointers[pointerID]
	if !ok || idx < 0 || idx >= len(s.Drawing.Strokes) {
		return nil, false
	}
	return s.Drawing.Strokes[idx], true
}

// ResetDrawing empties the drawing and releases every captured pointer
func (s *Session) ResetDrawing() {
	s.Drawing = Drawing{Strokes: []*Stroke{}}
	s.ActivePointers = make(map[int64]int)
	s.Round.HasDrawn = false
}
