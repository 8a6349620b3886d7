package render

import "github.com/KirkDiggler/linewidth/internal/models"

const (
	// DefaultLabel is the banner text on exported images
	DefaultLabel = "Can you guess the line width?"

	// DefaultFilename is the name exported images are delivered under
	DefaultFilename = "linewidth.jpg"

	// DefaultQuality is the JPEG quality of exported images
	DefaultQuality = 90

	// MIMETypeJPEG is the content type of exported images
	MIMETypeJPEG = "image/jpeg"

	// minBannerHeight is the smallest banner in pixels
	minBannerHeight = 80

	// bannerFraction is the share of the surface height the banner covers
	bannerFraction = 0.15

	// maxFontSize caps the label size in pixels
	maxFontSize = 48
)

// Config holds configuration for the export service
type Config struct {
	Label    string
	Filename string
	Quality  int
}

// ExportImageInput contains parameters for exporting a drawing
type ExportImageInput struct {
	// Drawing is read only; callers off the UI goroutine pass a clone
	Drawing *models.Drawing

	// StrokeWidth is in display units, like the drawing's points
	StrokeWidth float64

	// Scale maps display units to pixels; zero means 1
	Scale float64

	// Width and Height match the on-screen surface in pixels
	Width  int
	Height int
}

// ExportImageOutput contains the encoded image
type ExportImageOutput struct {
	Data     []byte
	Filename string
	MIMEType string
}
