package render

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"testing"

	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	exportService Service
	ctx           context.Context
}

func (s *ExportServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Label: "test label"})
	s.Require().NoError(err)
	s.exportService = svc
	s.ctx = context.Background()
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) decode(data []byte) image.Image {
	img, err := jpeg.Decode(bytes.NewReader(data))
	s.Require().NoError(err)
	return img
}

func (s *ExportServiceTestSuite) TestExportImage_HappyPath() {
	out, err := s.exportService.ExportImage(s.ctx, &ExportImageInput{
		Drawing:     horizontalLine(50),
		StrokeWidth: 20,
		Width:       400,
		Height:      300,
	})
	s.Require().NoError(err)

	s.Equal(DefaultFilename, out.Filename)
	s.Equal(MIMETypeJPEG, out.MIMEType)

	img := s.decode(out.Data)
	s.Equal(400, img.Bounds().Dx())
	s.Equal(300, img.Bounds().Dy())

	// Background above the banner
	s.True(isWhite(img, 300, 20))

	// Stroke
	s.True(isDark(img, 50, 50))

	// Banner band in the bottom 80px, away from label and badge
	r, _, b, _ := img.At(395, 295).RGBA()
	s.Greater(b, r)
	r, _, b, _ = img.At(395, 225).RGBA()
	s.Greater(b, r)
	s.True(isWhite(img, 395, 200))
}

func (s *ExportServiceTestSuite) TestExportImage_EmptyDrawing() {
	out, err := s.exportService.ExportImage(s.ctx, &ExportImageInput{
		Drawing:     &models.Drawing{},
		StrokeWidth: 10,
		Width:       120,
		Height:      120,
	})
	s.Require().NoError(err)

	img := s.decode(out.Data)
	s.True(isWhite(img, 60, 10))
}

func (s *ExportServiceTestSuite) TestExportImage_TinySurfaceIsAllBanner() {
	out, err := s.exportService.ExportImage(s.ctx, &ExportImageInput{
		Drawing:     &models.Drawing{},
		StrokeWidth: 10,
		Width:       50,
		Height:      40,
	})
	s.Require().NoError(err)

	img := s.decode(out.Data)
	r, _, b, _ := img.At(48, 2).RGBA()
	s.Greater(b, r)
}

func (s *ExportServiceTestSuite) TestExportImage_DoesNotMutateDrawing() {
	drawing := horizontalLine(40)
	before := drawing.Clone()

	_, err := s.exportService.ExportImage(s.ctx, &ExportImageInput{
		Drawing:     drawing,
		StrokeWidth: 12,
		Width:       100,
		Height:      100,
	})
	s.Require().NoError(err)
	s.Equal(before, drawing)
}

func (s *ExportServiceTestSuite) TestExportImage_InvalidInput() {
	_, err := s.exportService.ExportImage(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.exportService.ExportImage(s.ctx, &ExportImageInput{Width: 0, Height: 10})
	s.ErrorIs(err, ErrInvalidSize)
}

func (s *ExportServiceTestSuite) TestExportImage_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.exportService.ExportImage(ctx, &ExportImageInput{Width: 10, Height: 10})
	s.ErrorIs(err, context.Canceled)
}

func (s *ExportServiceTestSuite) TestNew_Defaults() {
	svc, err := New(nil)
	s.Require().NoError(err)
	s.Equal(DefaultLabel, svc.label)
	s.Equal(DefaultFilename, svc.filename)
	s.Equal(DefaultQuality, svc.quality)

	_, err = New(&Config{Quality: 101})
	s.ErrorIs(err, ErrInvalidQuality)
}

func (s *ExportServiceTestSuite) TestBannerHeight() {
	tests := []struct {
		height int
		want   float64
	}{
		{height: 1000, want: 150},
		{height: 400, want: 80},
		{height: 600, want: 90},
		{height: 50, want: 50},
	}
	for _, tt := range tests {
		s.InDelta(tt.want, BannerHeight(tt.height), 0.001, "height %d", tt.height)
	}
}

func (s *ExportServiceTestSuite) TestFontSize() {
	s.InDelta(32, FontSize(80), 0.001)
	s.InDelta(48, FontSize(150), 0.001)
	s.InDelta(48, FontSize(120), 0.001)
}

func (s *ExportServiceTestSuite) TestRenderBadge() {
	img, err := renderBadge(32)
	s.Require().NoError(err)
	s.Equal(32, img.Bounds().Dx())

	again, err := renderBadge(32)
	s.Require().NoError(err)
	s.Same(img, again)
}
