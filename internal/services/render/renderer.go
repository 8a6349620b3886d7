package render

import (
	"fmt"

	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/gogpu/gg"
)

var (
	// StrokeColor is the ink every stroke is drawn with
	StrokeColor = gg.Hex("#1f2933")

	// BackgroundColor fills the surface before strokes are drawn
	BackgroundColor = gg.White
)

// Render clears dc and draws every visible stroke of the drawing as one
// connected poly-line with round caps and joins. A nil context is a no-op.
func Render(dc *gg.Context, drawing *models.Drawing, strokeWidth float64) error {
	return RenderScaled(dc, drawing, strokeWidth, 1)
}

// RenderScaled is Render for drawings recorded in display units: points and
// the stroke width are multiplied by scale to get surface pixels. A scale of
// zero or less is treated as 1.
func RenderScaled(dc *gg.Context, drawing *models.Drawing, strokeWidth, scale float64) error {
	if dc == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	dc.ClearWithColor(BackgroundColor)

	if drawing == nil || strokeWidth <= 0 {
		return nil
	}

	dc.SetColor(StrokeColor.Color())
	dc.SetLineWidth(strokeWidth * scale)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, stroke := range drawing.VisibleStrokes() {
		first := stroke.Points[0]
		dc.MoveTo(first.X*scale, first.Y*scale)
		for _, p := range stroke.Points[1:] {
			dc.LineTo(p.X*scale, p.Y*scale)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("failed to stroke %s: %w", stroke.ID, err)
		}
	}

	return nil
}
