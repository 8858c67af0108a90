package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/muhammadgalhoum/DPS/internal/media"
	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/muhammadgalhoum/DPS/internal/repository"
	"github.com/muhammadgalhoum/DPS/internal/storage"
)

// PDFService defines the use cases for stored PDFs.
type PDFService interface {
	List(ctx context.Context) ([]model.PDF, error)
	Get(ctx context.Context, id int64) (*model.PDF, error)

	// Delete removes the blob if it is still present, then the record.
	// A failed blob delete leaves the record in place.
	Delete(ctx context.Context, id int64) error

	// Convert renders every page and returns them stacked top to bottom as a
	// JPEG data URI. Nothing is persisted.
	Convert(ctx context.Context, id int64) (string, error)
}

type pdfService struct {
	store  storage.Storage
	repo   repository.PDFRepository
	raster media.Rasterizer
}

// NewPDFService constructs a new PDFService.
func NewPDFService(store storage.Storage, repo repository.PDFRepository, raster media.Rasterizer) PDFService {
	return &pdfService{store: store, repo: repo, raster: raster}
}

func (s *pdfService) List(ctx context.Context) ([]model.PDF, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.PDF{}
	}
	return items, nil
}

func (s *pdfService) Get(ctx context.Context, id int64) (*model.PDF, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	pdf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pdf, nil
}

func (s *pdfService) Delete(ctx context.Context, id int64) error {
	pdf, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := removeBlob(ctx, s.store, pdf.Location); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *pdfService) Convert(ctx context.Context, id int64) (string, error) {
	ctx, span := tracer.Start(ctx, "PDFService.Convert")
	defer span.End()
	span.SetAttributes(attribute.Int64("pdf.id", id))

	pdf, err := s.Get(ctx, id)
	if err != nil {
		return "", fail(span, err)
	}

	ok, err := s.store.Exists(ctx, pdf.Location)
	if err != nil {
		return "", fail(span, fmt.Errorf("check storage: %w", err))
	}
	if !ok {
		return "", fail(span, fmt.Errorf("%w: %s", ErrBlobMissing, pdf.Location))
	}

	data, err := readBlob(ctx, s.store, pdf.Location)
	if err != nil {
		return "", fail(span, err)
	}

	pages, err := s.raster.Rasterize(ctx, data)
	if err != nil {
		return "", fail(span, fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}
	if len(pages) == 0 {
		return "", fail(span, fmt.Errorf("%w: no pages rendered", ErrRenderFailed))
	}
	span.SetAttributes(attribute.Int("pdf.pages_rendered", len(pages)))

	composite, err := media.StackVertical(pages)
	if err != nil {
		return "", fail(span, fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}
	out, err := media.EncodeJPEG(composite)
	if err != nil {
		return "", fail(span, fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}
	return media.EncodeDataURI("image/jpeg", out), nil
}
