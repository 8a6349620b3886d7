package share

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/linewidth/internal/services/share Service
//go:generate mockgen -package=mocks -destination=mocks/mock_sharer.go github.com/KirkDiggler/linewidth/internal/services/share Sharer
//go:generate mockgen -package=mocks -destination=mocks/mock_downloader.go github.com/KirkDiggler/linewidth/internal/services/share Downloader

import "context"

// Service delivers exported drawings to the player
type Service interface {
	// Deliver hands an encoded image to the native share capability when
	// one is available, otherwise saves it as a download
	Deliver(ctx context.Context, input *DeliverInput) (*DeliverOutput, error)

	// ExportAsync renders and delivers a snapshot of the drawing in the
	// background. The returned channel yields one result and is closed.
	ExportAsync(ctx context.Context, input *ExportAsyncInput) <-chan *ExportResult
}

// Sharer is a platform share capability
type Sharer interface {
	// CanShare reports whether content of the given MIME type is supported
	CanShare(mimeType string) bool

	// Share hands the image to the platform. Returns ErrShareCanceled when
	// the player dismisses the dialog.
	Share(ctx context.Context, image *Image) error
}

// Downloader stores an image where the player can pick it up
type Downloader interface {
	// Download saves the image and returns where it went
	Download(ctx context.Context, image *Image) (string, error)
}
