package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vehicleassist/internal/models"
	"vehicleassist/internal/repository"
)

// IngestService persists telemetry arriving from the vehicle feed.
type IngestService struct {
	rides     *repository.RideRepository
	batteries *repository.BatteryRepository
	motors    *repository.MotorRepository
	faults    *repository.FaultRepository
	logger    *zap.Logger
}

// RideInput is a ride reading from the feed.
type RideInput struct {
	DistanceKm float64   `json:"distance_km"`
	RecordedAt time.Time `json:"recorded_at"`
}

// BatteryInput is a battery snapshot from the feed.
type BatteryInput struct {
	ChargePct float64 `json:"charge_pct"`
	Health    string  `json:"health"`
}

// MotorInput is a motor sample from the feed.
type MotorInput struct {
	SpeedKmh     float64 `json:"speed_kmh"`
	TemperatureC float64 `json:"temperature_c"`
}

// FaultInput is a reported fault from the feed.
type FaultInput struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewIngestService returns service instance.
func NewIngestService(
	rides *repository.RideRepository,
	batteries *repository.BatteryRepository,
	motors *repository.MotorRepository,
	faults *repository.FaultRepository,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		rides:     rides,
		batteries: batteries,
		motors:    motors,
		faults:    faults,
		logger:    logger,
	}
}

// StoreRide persists a ride reading.
func (s *IngestService) StoreRide(ctx context.Context, input RideInput) error {
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now().UTC()
	}
	stat := &models.RideStat{
		DistanceKm: input.DistanceKm,
		RecordedAt: input.RecordedAt.UTC(),
	}
	return s.rides.Insert(ctx, stat)
}

// StoreBattery persists a battery snapshot.
func (s *IngestService) StoreBattery(ctx context.Context, input BatteryInput) error {
	stat := &models.BatteryStat{
		ChargePct: input.ChargePct,
		Health:    input.Health,
	}
	return s.batteries.Insert(ctx, stat)
}

// StoreMotor persists a motor sample.
func (s *IngestService) StoreMotor(ctx context.Context, input MotorInput) error {
	data := &models.MotorData{
		SpeedKmh:     input.SpeedKmh,
		TemperatureC: input.TemperatureC,
	}
	return s.motors.Insert(ctx, data)
}

// StoreFault persists a reported fault.
func (s *IngestService) StoreFault(ctx context.Context, input FaultInput) error {
	fault := &models.FaultCode{
		Message: input.Message,
		Status:  input.Status,
	}
	return s.faults.Insert(ctx, fault)
}
