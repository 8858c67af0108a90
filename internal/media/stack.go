package media

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// StackVertical composes pages top to bottom onto one canvas. The canvas is
// as wide as the widest page and as tall as all pages combined. Every page is
// left aligned; uncovered area stays black.
func StackVertical(pages []image.Image) (*image.NRGBA, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	width, height := 0, 0
	for _, p := range pages {
		b := p.Bounds()
		width = max(width, b.Dx())
		height += b.Dy()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	y := 0
	for _, p := range pages {
		b := p.Bounds()
		dst := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(canvas, dst, p, b.Min, draw.Src)
		y += b.Dy()
	}
	return canvas, nil
}
