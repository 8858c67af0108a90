package service

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/muhammadgalhoum/DPS/internal/media"
	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/muhammadgalhoum/DPS/internal/repository"
	"github.com/muhammadgalhoum/DPS/internal/storage"
)

// UploadService ingests data URI uploads.
type UploadService interface {
	// Upload decodes dataURI, measures the file, stores its bytes and creates
	// the matching record. The blob is written before the record; if the record
	// cannot be created the blob is removed again.
	Upload(ctx context.Context, dataURI string) (model.Record, error)
}

type uploadService struct {
	store  storage.Storage
	images repository.ImageRepository
	pdfs   repository.PDFRepository
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Storage, images repository.ImageRepository, pdfs repository.PDFRepository) UploadService {
	return &uploadService{store: store, images: images, pdfs: pdfs}
}

func (s *uploadService) Upload(ctx context.Context, dataURI string) (model.Record, error) {
	ctx, span := tracer.Start(ctx, "UploadService.Upload")
	defer span.End()

	uri, err := media.ParseDataURI(dataURI)
	if err != nil {
		return nil, fail(span, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}
	span.SetAttributes(
		attribute.String("media.subtype", uri.Subtype),
		attribute.Int("media.size", len(uri.Data)),
	)

	var rec model.Record
	switch uri.Subtype {
	case "jpg", "jpeg", "png":
		rec, err = s.uploadImage(ctx, uri)
	case "pdf":
		rec, err = s.uploadPDF(ctx, uri)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedMediaType, uri.Subtype)
	}
	if err != nil {
		return nil, fail(span, err)
	}
	return rec, nil
}

func (s *uploadService) uploadImage(ctx context.Context, uri media.DataURI) (model.Record, error) {
	info, err := media.InspectImage(uri.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	key, err := s.put(ctx, model.Image{}.Kind(), uri)
	if err != nil {
		return nil, err
	}

	stored, err := s.images.Create(ctx, &model.Image{
		Location:         key,
		Width:            info.Width,
		Height:           info.Height,
		NumberOfChannels: info.Channels,
	})
	if err != nil {
		return nil, s.rollback(ctx, key, err)
	}
	return *stored, nil
}

func (s *uploadService) uploadPDF(ctx context.Context, uri media.DataURI) (model.Record, error) {
	info, err := media.InspectPDF(uri.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	key, err := s.put(ctx, model.PDF{}.Kind(), uri)
	if err != nil {
		return nil, err
	}

	stored, err := s.pdfs.Create(ctx, &model.PDF{
		Location:      key,
		Width:         info.Width,
		Height:        info.Height,
		NumberOfPages: info.Pages,
	})
	if err != nil {
		return nil, s.rollback(ctx, key, err)
	}
	return *stored, nil
}

// put writes the payload under <dir>/<uuid>.<subtype> and returns the key.
func (s *uploadService) put(ctx context.Context, dir string, uri media.DataURI) (string, error) {
	key := path.Join(dir, uuid.New().String()+"."+uri.Subtype)
	_, err := s.store.Put(ctx, key, bytes.NewReader(uri.Data), storage.PutObjectOptions{
		Size:        int64(len(uri.Data)),
		ContentType: uri.MediaType,
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return key, nil
}

func (s *uploadService) rollback(ctx context.Context, key string, err error) error {
	if delErr := s.store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
	}
	return fmt.Errorf("db save failed: %w", err)
}
