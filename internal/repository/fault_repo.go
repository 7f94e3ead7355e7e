package repository

import (
	"context"
	"database/sql"
	"errors"

	"vehicleassist/internal/models"
)

// FaultRepository persists fault codes.
type FaultRepository struct {
	db *sql.DB
}

// NewFaultRepository returns repository.
func NewFaultRepository(db *sql.DB) *FaultRepository {
	return &FaultRepository{db: db}
}

// Insert stores a new fault code.
func (r *FaultRepository) Insert(ctx context.Context, fault *models.FaultCode) error {
	const query = `
		INSERT INTO fault_codes (message, status, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		fault.Message,
		fault.Status,
	).Scan(&fault.ID, &fault.CreatedAt)
}

// Latest returns the most recently inserted fault code.
func (r *FaultRepository) Latest(ctx context.Context) (*models.FaultCode, error) {
	const query = `
		SELECT id, message, status, created_at
		FROM fault_codes
		ORDER BY id DESC
		LIMIT 1
	`
	var f models.FaultCode
	err := r.db.QueryRowContext(ctx, query).Scan(
		&f.ID,
		&f.Message,
		&f.Status,
		&f.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
