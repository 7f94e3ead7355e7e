package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ride_stats (
		id BIGSERIAL PRIMARY KEY,
		distance_km DOUBLE PRECISION NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS battery_stats (
		id BIGSERIAL PRIMARY KEY,
		charge_pct DOUBLE PRECISION NOT NULL,
		health TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS motor_data (
		id BIGSERIAL PRIMARY KEY,
		speed_kmh DOUBLE PRECISION NOT NULL,
		temperature_c DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS fault_codes (
		id BIGSERIAL PRIMARY KEY,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the telemetry tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db: ensure schema: %w", err)
		}
	}
	return nil
}
