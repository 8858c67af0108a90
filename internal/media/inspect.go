package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ImageInfo is the structural metadata of a raster image.
type ImageInfo struct {
	Format   string
	Width    int
	Height   int
	Channels int
}

// PDFInfo is the structural metadata of a PDF document.
type PDFInfo struct {
	Pages  int
	Width  float64
	Height float64
}

// InspectImage decodes data completely and measures it.
func InspectImage(data []byte) (ImageInfo, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}
	b := img.Bounds()
	return ImageInfo{
		Format:   format,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels(img, format, data),
	}, nil
}

// InspectPDF reads the page count and the media box of the first page.
// The media box is reported as declared, ignoring any /Rotate entry.
func InspectPDF(data []byte) (PDFInfo, error) {
	ctx, err := api.ReadAndValidate(bytes.NewReader(data), pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return PDFInfo{}, fmt.Errorf("%w: %v", ErrUndecodablePDF, err)
	}
	if ctx.PageCount < 1 {
		return PDFInfo{}, fmt.Errorf("%w: document has no pages", ErrUndecodablePDF)
	}

	pbs, err := ctx.PageBoundaries(nil)
	if err != nil {
		return PDFInfo{}, fmt.Errorf("%w: %v", ErrUndecodablePDF, err)
	}
	if len(pbs) == 0 || pbs[0].MediaBox() == nil {
		return PDFInfo{}, fmt.Errorf("%w: missing media box", ErrUndecodablePDF)
	}

	mb := pbs[0].MediaBox()
	return PDFInfo{Pages: ctx.PageCount, Width: mb.Width(), Height: mb.Height()}, nil
}

// PNG colour types from the IHDR chunk.
var pngBands = map[byte]int{
	0: 1, // grayscale
	2: 3, // truecolor
	3: 1, // indexed
	4: 2, // grayscale + alpha
	6: 4, // truecolor + alpha
}

// channels reports the number of bands stored in the file.
func channels(img image.Image, format string, data []byte) int {
	if format == "png" && len(data) > 25 {
		if n, ok := pngBands[data[25]]; ok {
			return n
		}
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Paletted, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.RGBA, *image.RGBA64:
		return 3
	case *image.CMYK, *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4
	default:
		return 3
	}
}
