package postgres

import (
	"context"
	"database/sql"

	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/muhammadgalhoum/DPS/internal/repository"
)

// ImagePostgres is a PostgreSQL implementation of repository.ImageRepository.
type ImagePostgres struct {
	db *sql.DB
}

// NewImagePostgres creates a new ImagePostgres repository.
func NewImagePostgres(db *sql.DB) *ImagePostgres {
	return &ImagePostgres{db: db}
}

var _ repository.ImageRepository = (*ImagePostgres)(nil)

const imageColumns = `id, location, width, height, number_of_channels`

func scanImage(s scanner) (model.Image, error) {
	var img model.Image
	err := s.Scan(
		&img.ID,
		&img.Location,
		&img.Width,
		&img.Height,
		&img.NumberOfChannels,
	)
	return img, err
}

// Create inserts a new image row; the ID is assigned by the database.
func (r *ImagePostgres) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	const q = `
		INSERT INTO images (location, width, height, number_of_channels)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + imageColumns
	row := r.db.QueryRowContext(ctx, q,
		img.Location,
		img.Width,
		img.Height,
		img.NumberOfChannels,
	)
	out, err := scanImage(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single image by its ID.
func (r *ImagePostgres) FindByID(ctx context.Context, id int64) (*model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	img, err := scanImage(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// List returns all images ordered by ID.
func (r *ImagePostgres) List(ctx context.Context) ([]model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images ORDER BY id ASC`
	return queryAll(ctx, r.db, q, scanImage)
}

// Delete removes an image by ID. It does not return an error if the row does not exist.
func (r *ImagePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM images WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
