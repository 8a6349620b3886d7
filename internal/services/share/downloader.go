package share

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileDownloader writes images into a directory
type FileDownloader struct {
	Dir string
}

// NewFileDownloader creates a downloader rooted at dir
func NewFileDownloader(dir string) *FileDownloader {
	return &FileDownloader{Dir: dir}
}

// Download writes the image under its own filename, replacing any previous
// export of the same name
func (d *FileDownloader) Download(ctx context.Context, image *Image) (string, error) {
	if image == nil || image.Filename == "" {
		return "", ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := filepath.Base(image.Filename)
	path := filepath.Join(d.Dir, name)

	// Each call writes its own temp file so overlapping exports never
	// rename each other's data.
	tmp, err := os.CreateTemp(d.Dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp export: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, image.Data); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("move export into place: %w", err)
	}

	return path, nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
