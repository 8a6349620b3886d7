package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelFontOnce sync.Once
	labelFont     *text.FontSource
	labelFontErr  error
)

// labelFace returns the banner font at the given pixel size
func labelFace(size float64) (text.Face, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = text.NewFontSource(goregular.TTF)
	})
	if labelFontErr != nil {
		return nil, fmt.Errorf("load label font: %w", labelFontErr)
	}
	return labelFont.Face(size), nil
}
