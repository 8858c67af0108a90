package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotate turns the image in data by degrees, clockwise for positive values
// and counter-clockwise for negative ones. The canvas grows to fit the
// rotated content. The result is encoded in the source format ("png" or
// "jpeg"); any other source format is re-encoded as "jpeg".
func Rotate(data []byte, degrees int) ([]byte, string, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	// imaging rotates counter-clockwise.
	rotated := imaging.Rotate(src, -float64(degrees), color.Transparent)

	return encode(rotated, format)
}

// EncodeJPEG encodes img as a baseline JPEG.
func EncodeJPEG(img image.Image) ([]byte, error) {
	out, _, err := encode(img, "jpeg")
	return out, err
}

func encode(img image.Image, format string) ([]byte, string, error) {
	f := imaging.JPEG
	if format == "png" {
		f = imaging.PNG
	} else {
		format = "jpeg"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), format, nil
}
