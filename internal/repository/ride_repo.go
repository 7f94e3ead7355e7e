package repository

import (
	"context"
	"database/sql"
	"errors"

	"vehicleassist/internal/models"
)

// RideRepository persists ride distance readings.
type RideRepository struct {
	db *sql.DB
}

// NewRideRepository returns repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{db: db}
}

// Insert stores a new ride reading.
func (r *RideRepository) Insert(ctx context.Context, stat *models.RideStat) error {
	const query = `
		INSERT INTO ride_stats (distance_km, recorded_at, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		stat.DistanceKm,
		stat.RecordedAt,
	).Scan(&stat.ID, &stat.CreatedAt)
}

// Latest returns the most recently inserted ride reading.
// Insertion order is authoritative, not recorded_at.
func (r *RideRepository) Latest(ctx context.Context) (*models.RideStat, error) {
	const query = `
		SELECT id, distance_km, recorded_at, created_at
		FROM ride_stats
		ORDER BY id DESC
		LIMIT 1
	`
	var s models.RideStat
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID,
		&s.DistanceKm,
		&s.RecordedAt,
		&s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
