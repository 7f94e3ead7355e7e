package models

import "time"

// RideStat represents a single completed ride distance reading.
type RideStat struct {
	ID         int64     `db:"id" json:"id"`
	DistanceKm float64   `db:"distance_km" json:"distance_km"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// BatteryStat represents a battery charge and health snapshot.
type BatteryStat struct {
	ID        int64     `db:"id" json:"id"`
	ChargePct float64   `db:"charge_pct" json:"charge_pct"`
	Health    string    `db:"health" json:"health"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MotorData represents a motor speed and temperature sample.
type MotorData struct {
	ID           int64     `db:"id" json:"id"`
	SpeedKmh     float64   `db:"speed_kmh" json:"speed_kmh"`
	TemperatureC float64   `db:"temperature_c" json:"temperature_c"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FaultCode represents a reported fault and its handling status.
type FaultCode struct {
	ID        int64     `db:"id" json:"id"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
