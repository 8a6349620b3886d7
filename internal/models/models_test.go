package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawing_VisibleStrokesSkipsTaps(t *testing.T) {
	d := &Drawing{Strokes: []*Stroke{
		{ID: "tap", Points: []Point{{X: 1, Y: 1}}},
		{ID: "line", Points: []Point{{X: 1, Y: 1}, {X: 5, Y: 5}}},
		{ID: "empty"},
	}}

	visible := d.VisibleStrokes()
	require.Len(t, visible, 1)
	assert.Equal(t, "line", visible[0].ID)
	assert.Equal(t, 3, d.PointCount())
}

func TestDrawing_CloneIsDeep(t *testing.T) {
	d := &Drawing{Strokes: []*Stroke{
		{ID: "a", Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}},
	}}

	c := d.Clone()
	c.Strokes[0].Points[0].X = 100
	c.Strokes = append(c.Strokes, &Stroke{ID: "b"})

	assert.Equal(t, 1.0, d.Strokes[0].Points[0].X)
	assert.Len(t, d.Strokes, 1)
}

func TestDrawing_NilIsEmpty(t *testing.T) {
	var d *Drawing
	assert.True(t, d.IsEmpty())
	assert.Zero(t, d.PointCount())
	assert.Empty(t, d.VisibleStrokes())
	assert.NotNil(t, d.Clone())
}

func TestSession_ResetDrawing(t *testing.T) {
	s := &Session{
		Round:          Round{HasDrawn: true},
		Drawing:        Drawing{Strokes: []*Stroke{{ID: "a"}}},
		ActivePointers: map[int64]int{1: 0},
	}

	stroke, ok := s.ActiveStroke(1)
	require.True(t, ok)
	assert.Equal(t, "a", stroke.ID)

	s.ResetDrawing()

	assert.True(t, s.Drawing.IsEmpty())
	assert.False(t, s.Round.HasDrawn)
	_, ok = s.ActiveStroke(1)
	assert.False(t, ok)
}
