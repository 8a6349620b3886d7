package render

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

var (
	// BannerColor is the semi-opaque band behind the label
	BannerColor = gg.RGBA2(0.16, 0.22, 0.55, 0.85)

	// LabelColor is the banner text colour
	LabelColor = gg.White
)

type service struct {
	label    string
	filename string
	quality  int
}

// New creates a new export service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	label := cfg.Label
	if label == "" {
		label = DefaultLabel
	}

	filename := cfg.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	quality := cfg.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return nil, ErrInvalidQuality
	}

	return &service{
		label:    label,
		filename: filename,
		quality:  quality,
	}, nil
}

// ExportImage renders the drawing over white, adds the banner, label and
// badge, and encodes the composite as a JPEG
func (s *service) ExportImage(ctx context.Context, input *ExportImageInput) (*ExportImageOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	if input.Width <= 0 || input.Height <= 0 {
		return nil, ErrInvalidSize
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(input.Width, input.Height)
	defer dc.Close()

	if err := RenderScaled(dc, input.Drawing, input.StrokeWidth, input.Scale); err != nil {
		return nil, fmt.Errorf("failed to render drawing: %w", err)
	}

	if err := s.drawBanner(dc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodeJPEG(&buf, s.quality); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return &ExportImageOutput{
		Data:     buf.Bytes(),
		Filename: s.filename,
		MIMEType: MIMETypeJPEG,
	}, nil
}

func (s *service) drawBanner(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	bh := BannerHeight(dc.Height())
	top := h - bh

	dc.SetColor(BannerColor.Color())
	dc.DrawRectangle(0, top, w, bh)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill banner: %w", err)
	}

	face, err := labelFace(FontSize(bh))
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetColor(LabelColor.Color())
	dc.DrawStringAnchored(s.label, w/2, top+bh/2, 0.5, 0.5)

	size := int(bh * 0.6)
	margin := (bh - float64(size)) / 2
	// Only when the badge clears the label on a narrow surface
	if size < 16 || float64(size)*6 > w {
		return nil
	}
	badge, err := renderBadge(size)
	if err != nil {
		return err
	}
	dc.DrawImage(gg.ImageBufFromImage(badge), margin, top+margin)

	return nil
}

// BannerHeight returns the banner band height for a surface of height h:
// 15% of the height but at least 80px, never taller than the surface
func BannerHeight(h int) float64 {
	bh := math.Max(float64(h)*bannerFraction, minBannerHeight)
	return math.Min(bh, float64(h))
}

// FontSize returns the label size for a banner of the given height
func FontSize(bannerHeight float64) float64 {
	return math.Min(maxFontSize, bannerHeight*0.4)
}
