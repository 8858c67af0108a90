package repository

import (
	"context"

	"github.com/muhammadgalhoum/DPS/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) and contain no business logic.

// ImageRepository persists image records.
type ImageRepository interface {
	// Create inserts a new image and returns it with the database-assigned ID.
	Create(ctx context.Context, img *model.Image) (*model.Image, error)

	// FindByID returns sql.ErrNoRows when no image has the given ID.
	FindByID(ctx context.Context, id int64) (*model.Image, error)

	// List returns every image ordered by ID.
	List(ctx context.Context) ([]model.Image, error)

	// Delete removes an image by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}

// PDFRepository persists PDF records.
type PDFRepository interface {
	// Create inserts a new PDF and returns it with the database-assigned ID.
	Create(ctx context.Context, pdf *model.PDF) (*model.PDF, error)

	// FindByID returns sql.ErrNoRows when no PDF has the given ID.
	FindByID(ctx context.Context, id int64) (*model.PDF, error)

	// List returns every PDF ordered by ID.
	List(ctx context.Context) ([]model.PDF, error)

	// Delete removes a PDF by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
