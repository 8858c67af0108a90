package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errNotInteger = errors.New("value is not an integer")

// flexInt is an integer field that also accepts a numeric string ("90") or an
// integral float (90.0). Set reports whether the field was present and non-null.
type flexInt struct {
	Value int64
	Set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		v, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt64 {
			return errNotInteger
		}
		n = int64(v)
	}

	f.Value, f.Set = n, true
	return nil
}

// decodeBody unmarshals a JSON body into v with the app's decoder. An empty
// body leaves v untouched so handlers can report missing fields.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, v)
}

// paramID parses the :id route parameter as a positive integer.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type uploadRequest struct {
	File string `json:"file" example:"data:image/png;base64,iVBORw0KGgo..."`
}

type rotateRequest struct {
	ImageID flexInt `json:"image_id" swaggertype:"integer" example:"1"`
	Angle   flexInt `json:"angle" swaggertype:"integer" example:"90"`
}

type rotateResponse struct {
	RotatedImage string `json:"rotated_image"`
}

type convertRequest struct {
	PDFID flexInt `json:"pdf_id" swaggertype:"integer" example:"1"`
}

type convertResponse struct {
	CombinedImage string `json:"combined_image"`
}
