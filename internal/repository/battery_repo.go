package repository

import (
	"context"
	"database/sql"
	"errors"

	"vehicleassist/internal/models"
)

// BatteryRepository persists battery snapshots.
type BatteryRepository struct {
	db *sql.DB
}

// NewBatteryRepository returns repository.
func NewBatteryRepository(db *sql.DB) *BatteryRepository {
	return &BatteryRepository{db: db}
}

// Insert stores a new battery snapshot.
func (r *BatteryRepository) Insert(ctx context.Context, stat *models.BatteryStat) error {
	const query = `
		INSERT INTO battery_stats (charge_pct, health, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		stat.ChargePct,
		stat.Health,
	).Scan(&stat.ID, &stat.CreatedAt)
}

// Latest returns the most recently inserted battery snapshot.
func (r *BatteryRepository) Latest(ctx context.Context) (*models.BatteryStat, error) {
	const query = `
		SELECT id, charge_pct, health, created_at
		FROM battery_stats
		ORDER BY id DESC
		LIMIT 1
	`
	var s models.BatteryStat
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID,
		&s.ChargePct,
		&s.Health,
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
