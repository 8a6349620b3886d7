package share

import (
	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/KirkDiggler/linewidth/internal/services/render"
	"go.uber.org/zap"
)

// Method is how an image reached the player
type Method string

const (
	MethodShare    Method = "share"
	MethodDownload Method = "download"
)

// Image is an encoded export ready for delivery
type Image struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Config holds configuration for the share service
type Config struct {
	Exporter render.Service

	// Sharer is optional; without one every image is downloaded
	Sharer Sharer

	Downloader Downloader

	// Logger defaults to the process logger
	Logger *zap.Logger
}

// DeliverInput contains the image to deliver
type DeliverInput struct {
	Image *Image
}

// DeliverOutput describes the delivery
type DeliverOutput struct {
	Method Method

	// Location is the saved path for downloads
	Location string

	// Canceled is true when the player dismissed the share dialog
	Canceled bool
}

// ExportAsyncInput contains the drawing to export
type ExportAsyncInput struct {
	// Drawing is cloned before ExportAsync returns
	Drawing *models.Drawing

	StrokeWidth float64
	Scale       float64
	Width       int
	Height      int
}

// ExportResult reports how a background export ended
type ExportResult struct {
	Delivery *DeliverOutput
	Err      error
}
