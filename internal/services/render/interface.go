package render

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/linewidth/internal/services/render Service

import "context"

// Service composites finished drawings into shareable images
type Service interface {
	// ExportImage renders the drawing offscreen, overlays the banner and
	// encodes the result as a JPEG
	ExportImage(ctx context.Context, input *ExportImageInput) (*ExportImageOutput, error)
}
