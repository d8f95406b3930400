package svgraster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
)

func TestRasterize_FillsBackgroundRectangle(t *testing.T) {
	svg := svgtemplate.Wrap(`<rect x="0" y="0" width="1000" height="1000" fill="#ff0000"/>`)

	img, err := Rasterize(svg, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("unexpected bounds %v", b)
	}

	r, g, _, a := img.At(50, 50).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || a>>8 != 0xff {
		t.Fatalf("expected opaque red at center, got r=%d g=%d a=%d", r>>8, g>>8, a>>8)
	}
}

func TestRasterize_DefaultSize(t *testing.T) {
	img, err := Rasterize(svgtemplate.Wrap(""), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != DefaultSize {
		t.Fatalf("expected width %d, got %d", DefaultSize, img.Bounds().Dx())
	}
}

func TestPNG_Decodes(t *testing.T) {
	data, err := PNG(svgtemplate.Wrap(`<circle cx="500" cy="500" r="200" fill="blue"/>`), 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 64 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRasterize_RejectsNonSVG(t *testing.T) {
	if _, err := Rasterize("not xml at all <", 10); err == nil {
		t.Fatal("expected parse error")
	}
}
