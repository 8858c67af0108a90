package media

import "errors"

var (
	ErrMalformedDataURI = errors.New("malformed data uri")
	ErrUndecodableImage = errors.New("file is not a supported image")
	ErrUndecodablePDF   = errors.New("file is not a readable pdf")
	ErrNoPages          = errors.New("no pages to compose")
)
