package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	dcconfig "github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	dcimage "github.com/JaimeStill/document-context/pkg/image"

	"github.com/muhammadgalhoum/DPS/internal/config"
)

// DefaultDPI matches the resolution poppler-based converters use when none is given.
const DefaultDPI = 200

// Rasterizer renders every page of a PDF, in page order.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdf []byte) ([]image.Image, error)
}

// magickRasterizer renders pages through ImageMagick via document-context.
// The PDF is spooled to a temporary file because the renderer reads from disk.
type magickRasterizer struct {
	dpi    int
	tmpDir string
}

// NewRasterizer returns the ImageMagick-backed Rasterizer.
func NewRasterizer(cfg config.RenderConfig) Rasterizer {
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &magickRasterizer{dpi: dpi, tmpDir: cfg.TmpDir}
}

func (r *magickRasterizer) Rasterize(ctx context.Context, data []byte) ([]image.Image, error) {
	f, err := os.CreateTemp(r.tmpDir, "rasterize-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	doc, err := document.OpenPDF(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodablePDF, err)
	}
	defer doc.Close()
	count := doc.PageCount()

	renderer, err := dcimage.NewImageMagickRenderer(dcconfig.ImageConfig{
		Format:  "png",
		DPI:     r.dpi,
		Options: map[string]any{"background": "white"},
	})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	pages := make([]image.Image, 0, count)
	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := doc.ExtractPage(n)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", n, err)
		}
		out, err := page.ToImage(renderer, nil)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", n, err)
		}
		img, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			return nil, fmt.Errorf("decode page %d: %w", n, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
