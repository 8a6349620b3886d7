package render

import (
	"fmt"
	"image"

	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/gogpu/gg"
)

// Surface is the on-screen drawing buffer. It is sized to the pixel
// dimensions the window hands out and is owned by the UI goroutine.
type Surface struct {
	dc *gg.Context

	// scale maps display units to surface pixels
	scale float64
}

// NewSurface creates a surface of the given pixel size
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	return &Surface{
		dc:    gg.NewContext(width, height),
		scale: 1,
	}, nil
}

// Size returns the pixel dimensions of the surface
func (s *Surface) Size() (int, int) {
	if s == nil || s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// Resize changes the buffer size and redraws at once so the drawing
// survives the reallocation. The same size is a no-op.
func (s *Surface) Resize(width, height int, drawing *models.Drawing, strokeWidth float64) error {
	if s == nil || s.dc == nil {
		return nil
	}
	if w, h := s.Size(); w == width && h == height {
		return nil
	}

	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("failed to resize surface: %w", err)
	}

	return s.Redraw(drawing, strokeWidth)
}

// Redraw renders the drawing onto the surface
func (s *Surface) Redraw(drawing *models.Drawing, strokeWidth float64) error {
	if s == nil {
		return nil
	}
	return RenderScaled(s.dc, drawing, strokeWidth, s.Scale())
}

// SetScale sets the display-unit to pixel ratio used by later redraws.
// Values of zero or less reset it to 1.
func (s *Surface) SetScale(scale float64) {
	if s == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
}

// Scale returns the display-unit to pixel ratio
func (s *Surface) Scale() float64 {
	if s == nil || s.scale <= 0 {
		return 1
	}
	return s.scale
}

// Image returns the current surface pixels
func (s *Surface) Image() image.Image {
	if s == nil || s.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return s.dc.Image()
}

// Close releases the underlying context
func (s *Surface) Close() error {
	if s == nil || s.dc == nil {
		return nil
	}
	return s.dc.Close()
}
