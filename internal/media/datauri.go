package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURI is a decoded "data:<mime>;base64,<payload>" string.
type DataURI struct {
	// MediaType is the declared MIME type, e.g. "image/jpeg".
	MediaType string
	// Subtype is the lowercase token after the last slash of MediaType, e.g. "jpeg".
	Subtype string
	Data    []byte
}

// ParseDataURI decodes s. Only base64 payloads are accepted.
func ParseDataURI(s string) (DataURI, error) {
	header, payload, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing comma separator", ErrMalformedDataURI)
	}

	rest, ok := strings.CutPrefix(header, "data:")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing data: scheme", ErrMalformedDataURI)
	}

	mediaType, params, _ := strings.Cut(rest, ";")
	if !hasBase64Param(params) {
		return DataURI{}, fmt.Errorf("%w: payload is not base64", ErrMalformedDataURI)
	}

	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	subtype := mediaType
	if i := strings.LastIndex(mediaType, "/"); i >= 0 {
		subtype = mediaType[i+1:]
	}
	if subtype == "" {
		return DataURI{}, fmt.Errorf("%w: missing media type", ErrMalformedDataURI)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return DataURI{}, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}

	return DataURI{MediaType: mediaType, Subtype: subtype, Data: data}, nil
}

// EncodeDataURI renders data as a base64 data URI with the given MIME type.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func hasBase64Param(params string) bool {
	for _, p := range strings.Split(params, ";") {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			return true
		}
	}
	return false
}
