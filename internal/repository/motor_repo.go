package repository

import (
	"context"
	"database/sql"
	"errors"

	"vehicleassist/internal/models"
)

// MotorRepository persists motor samples.
type MotorRepository struct {
	db *sql.DB
}

// NewMotorRepository returns repository.
func NewMotorRepository(db *sql.DB) *MotorRepository {
	return &MotorRepository{db: db}
}

// Insert stores a new motor sample.
func (r *MotorRepository) Insert(ctx context.Context, data *models.MotorData) error {
	const query = `
		INSERT INTO motor_data (speed_kmh, temperature_c, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		data.SpeedKmh,
		data.TemperatureC,
	).Scan(&data.ID, &data.CreatedAt)
}

// Latest returns the most recently inserted motor sample.
func (r *MotorRepository) Latest(ctx context.Context) (*models.MotorData, error) {
	const query = `
		SELECT id, speed_kmh, temperature_c, created_at
		FROM motor_data
		ORDER BY id DESC
		LIMIT 1
	`
	var d models.MotorData
	err := r.db.QueryRowContext(ctx, query).Scan(
		&d.ID,
		&d.SpeedKmh,
		&d.TemperatureC,
		&d.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
