package models

import (
	"time"
)

// Point is one pointer sample in canvas-local pixel coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous pointer drag
type Stroke struct {
	// ID is the unique identifier for the stroke
	ID string `json:"id"`

	// PointerID is the pointer session that produced the stroke
	PointerID int64 `json:"pointer_id"`

	// Points are the recorded samples, in order
	Points []Point `json:"points"`

	// StartedAt is when the pointer went down
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the pointer went up, zero while still drawing
	EndedAt time.Time `json:"ended_at,omitempty"`
}

// IsVisible reports whether the stroke leaves a mark. A tap records a
// single point and draws nothing.
func (s *Stroke) IsVisible() bool {
	return s != nil && len(s.Points) >= 2
}

// IsFinished reports whether the pointer session has ended
func (s *Stroke) IsFinished() bool {
	return s != nil && !s.EndedAt.IsZero()
}

// Drawing is every stroke recorded in the current round
type Drawing struct {
	Strokes []*Stroke `json:"strokes"`
}

// IsEmpty reports whether nothing has been recorded
func (d *Drawing) IsEmpty() bool {
	return d == nil || len(d.Strokes) == 0
}

// PointCount returns the number of samples across all strokes
func (d *Drawing) PointCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Strokes {
		n += len(s.Points)
	}
	return n
}

// VisibleStrokes returns the strokes that render, in drawing order
func (d *Drawing) VisibleStrokes() []*Stroke {
	if d == nil {
		return nil
	}
	visible := make([]*Stroke, 0, len(d.Strokes))
	for _, s := range d.Strokes {
		if s.IsVisible() {
			visible = append(visible, s)
		}
	}
	return visible
}

// Clone returns a deep copy that can be handed to another goroutine
func (d *Drawing) Clone() *Drawing {
	if d == nil {
		return &Drawing{}
	}
	out := &Drawing{Strokes: make([]*Stroke, 0, len(d.Strokes))}
	for _, s := range d.Strokes {
		if s == nil {
			continue
		}
		c := *s
		c.Points = append([]Point(nil), s.Points...)
		out.Strokes = append(out.Strokes, &c)
	}
	return out
}
