// Package svgraster rasterizes rendered SVG documents to PNG by wrapping rasterx.
package svgraster

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/aalvaropc/ninjasvg/internal/domain"
)

// DefaultSize matches the 1000x1000 view box of the envelope.
const DefaultSize = 1000

// Rasterize draws svg onto a size x size canvas. Unsupported elements
// (text, filters) are skipped rather than reported.
func Rasterize(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = DefaultSize
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "svgraster.parse",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.SetTarget(0, 0, float64(size), float64(size))

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// PNG rasterizes svg and encodes the result.
func PNG(svg string, size int) ([]byte, error) {
	img, err := Rasterize(svg, size)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return nil, &domain.OpError{
			Op:   "svgraster.encode",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return b.Bytes(), nil
}
