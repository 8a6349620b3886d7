package desktop

import (
	"context"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/KirkDiggler/linewidth/internal/services/share"
)

// osSharer saves the image and hands it to the operating system's default
// viewer, which offers the platform share actions from there
type osSharer struct {
	app        fyne.App
	downloader share.Downloader
}

// NewOSSharer creates a sharer backed by the OS file handler
func NewOSSharer(app fyne.App, downloader share.Downloader) share.Sharer {
	return &osSharer{
		app:        app,
		downloader: downloader,
	}
}

func (s *osSharer) CanShare(mimeType string) bool {
	return share.IsImage(mimeType)
}

func (s *osSharer) Share(ctx context.Context, image *share.Image) error {
	path, err := s.downloader.Download(ctx, image)
	if err != nil {
		return err
	}

	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		return fmt.Errorf("build file url: %w", err)
	}

	if err := s.app.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	return nil
}
