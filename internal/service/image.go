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

// ImageService defines the use cases for stored images.
type ImageService interface {
	List(ctx context.Context) ([]model.Image, error)
	Get(ctx context.Context, id int64) (*model.Image, error)

	// Delete removes the blob if it is still present, then the record.
	// A failed blob delete leaves the record in place.
	Delete(ctx context.Context, id int64) error

	// Rotate returns the stored image turned clockwise by angle degrees as a
	// data URI. Nothing is persisted.
	Rotate(ctx context.Context, id int64, angle int) (string, error)
}

type imageService struct {
	store storage.Storage
	repo  repository.ImageRepository
}

// NewImageService constructs a new ImageService.
func NewImageService(store storage.Storage, repo repository.ImageRepository) ImageService {
	return &imageService{store: store, repo: repo}
}

func (s *imageService) List(ctx context.Context) ([]model.Image, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Image{}
	}
	return items, nil
}

func (s *imageService) Get(ctx context.Context, id int64) (*model.Image, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

func (s *imageService) Delete(ctx context.Context, id int64) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := removeBlob(ctx, s.store, img.Location); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *imageService) Rotate(ctx context.Context, id int64, angle int) (string, error) {
	ctx, span := tracer.Start(ctx, "ImageService.Rotate")
	defer span.End()
	span.SetAttributes(attribute.Int64("image.id", id), attribute.Int("rotate.angle", angle))

	img, err := s.Get(ctx, id)
	if err != nil {
		return "", fail(span, err)
	}

	data, err := readBlob(ctx, s.store, img.Location)
	if err != nil {
		return "", fail(span, err)
	}

	out, format, err := media.Rotate(data, angle)
	if err != nil {
		return "", fail(span, fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}
	return media.EncodeDataURI("image/"+format, out), nil
}
