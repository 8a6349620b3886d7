package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/brush.svg
var badgeFiles embed.FS

var (
	badgeCache   = map[int]image.Image{}
	badgeCacheMu sync.RWMutex
)

// renderBadge rasterizes the brush icon into a size×size image
func renderBadge(size int) (image.Image, error) {
	badgeCacheMu.RLock()
	if img, ok := badgeCache[size]; ok {
		badgeCacheMu.RUnlock()
		return img, nil
	}
	badgeCacheMu.RUnlock()

	data, err := badgeFiles.ReadFile("assets/brush.svg")
	if err != nil {
		return nil, fmt.Errorf("read badge asset: %w", err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse badge svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	badgeCacheMu.Lock()
	badgeCache[size] = img
	badgeCacheMu.Unlock()

	return img, nil
}
