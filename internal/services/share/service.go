package share

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/linewidth/internal/obslog"
	"github.com/KirkDiggler/linewidth/internal/services/render"
	"go.uber.org/zap"
)

type service struct {
	exporter   render.Service
	sharer     Sharer
	downloader Downloader
	logger     *zap.Logger
}

// New creates a new share service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Exporter == nil {
		return nil, ErrNilExporter
	}

	if cfg.Downloader == nil {
		return nil, ErrNilDownloader
	}

	logger := cfg.Logger
	if logger == nil {
		logger = obslog.L()
	}

	return &service{
		exporter:   cfg.Exporter,
		sharer:     cfg.Sharer,
		downloader: cfg.Downloader,
		logger:     logger.Named("share"),
	}, nil
}

// Deliver shares the image when a sharer supports it and downloads it
// otherwise. A canceled share is a normal outcome.
func (s *service) Deliver(ctx context.Context, input *DeliverInput) (*DeliverOutput, error) {
	if input == nil || input.Image == nil {
		return nil, ErrInvalidInput
	}
	if len(input.Image.Data) == 0 {
		return nil, ErrEmptyImage
	}

	if s.sharer != nil && s.sharer.CanShare(input.Image.MIMEType) {
		err := s.sharer.Share(ctx, input.Image)
		switch {
		case err == nil:
			s.logger.Info("image shared", zap.String("filename", input.Image.Filename))
			return &DeliverOutput{Method: MethodShare}, nil
		case errors.Is(err, ErrShareCanceled):
			s.logger.Info("share canceled", zap.String("filename", input.Image.Filename))
			return &DeliverOutput{Method: MethodShare, Canceled: true}, nil
		default:
			return nil, fmt.Errorf("failed to share image: %w", err)
		}
	}

	location, err := s.downloader.Download(ctx, input.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	s.logger.Info("image downloaded", zap.String("location", location))

	return &DeliverOutput{
		Method:   MethodDownload,
		Location: location,
	}, nil
}

// ExportAsync clones the drawing, then renders and delivers it on its own
// goroutine. Failures are logged and reported on the channel only.
func (s *service) ExportAsync(ctx context.Context, input *ExportAsyncInput) <-chan *ExportResult {
	done := make(chan *ExportResult, 1)

	if input == nil {
		done <- &ExportResult{Err: ErrInvalidInput}
		close(done)
		return done
	}

	exportInput := &render.ExportImageInput{
		Drawing:     input.Drawing.Clone(),
		StrokeWidth: input.StrokeWidth,
		Scale:       input.Scale,
		Width:       input.Width,
		Height:      input.Height,
	}

	go func() {
		defer close(done)

		result := s.export(ctx, exportInput)
		if result.Err != nil {
			s.logger.Warn("export failed", zap.Error(result.Err))
		}
		done <- result
	}()

	return done
}

func (s *service) export(ctx context.Context, input *render.ExportImageInput) (result *ExportResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &ExportResult{Err: fmt.Errorf("export panicked: %v", r)}
		}
	}()

	out, err := s.exporter.ExportImage(ctx, input)
	if err != nil {
		return &ExportResult{Err: fmt.Errorf("failed to export image: %w", err)}
	}

	delivery, err := s.Deliver(ctx, &DeliverInput{
		Image: &Image{
			Data:     out.Data,
			Filename: out.Filename,
			MIMEType: out.MIMEType,
		},
	})
	if err != nil {
		return &ExportResult{Err: err}
	}

	return &ExportResult{Delivery: delivery}
}

// IsImage reports whether the MIME type is an image type
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
