package service

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrIDRequired           = errors.New("id is required")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNotFound             = errors.New("record not found")
	ErrBlobMissing          = errors.New("stored file not found")
	ErrRenderFailed         = errors.New("render failed")
)

var tracer = otel.Tracer("github.com/muhammadgalhoum/DPS/internal/service")

// fail records err on span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
