package postgres

import (
	"context"
	"database/sql"

	"github.com/muhammadgalhoum/DPS/internal/model"
	"github.com/muhammadgalhoum/DPS/internal/repository"
)

// PDFPostgres is a PostgreSQL implementation of repository.PDFRepository.
type PDFPostgres struct {
	db *sql.DB
}

// NewPDFPostgres creates a new PDFPostgres repository.
func NewPDFPostgres(db *sql.DB) *PDFPostgres {
	return &PDFPostgres{db: db}
}

var _ repository.PDFRepository = (*PDFPostgres)(nil)

const pdfColumns = `id, location, width, height, number_of_pages`

func scanPDF(s scanner) (model.PDF, error) {
	var p model.PDF
	err := s.Scan(
		&p.ID,
		&p.Location,
		&p.Width,
		&p.Height,
		&p.NumberOfPages,
	)
	return p, err
}

func (r *PDFPostgres) Create(ctx context.Context, pdf *model.PDF) (*model.PDF, error) {
	const q = `
		INSERT INTO pdfs (location, width, height, number_of_pages)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + pdfColumns
	row := r.db.QueryRowContext(ctx, q,
		pdf.Location,
		pdf.Width,
		pdf.Height,
		pdf.NumberOfPages,
	)
	out, err := scanPDF(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PDFPostgres) FindByID(ctx context.Context, id int64) (*model.PDF, error) {
	const q = `SELECT ` + pdfColumns + ` FROM pdfs WHERE id = $1`
	p, err := scanPDF(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PDFPostgres) List(ctx context.Context) ([]model.PDF, error) {
	const q = `SELECT ` + pdfColumns + ` FROM pdfs ORDER BY id ASC`
	return queryAll(ctx, r.db, q, scanPDF)
}

func (r *PDFPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM pdfs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
