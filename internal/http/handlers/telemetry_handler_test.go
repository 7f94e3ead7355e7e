package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vehicleassist/internal/service"
)

type fakeIngest struct {
	rides     []service.RideInput
	batteries []service.BatteryInput
	motors    []service.MotorInput
	faults    []service.FaultInput
	err       error
}

func (f *fakeIngest) StoreRide(_ context.Context, input service.RideInput) error {
	f.rides = append(f.rides, input)
	return f.err
}

func (f *fakeIngest) StoreBattery(_ context.Context, input service.BatteryInput) error {
	f.batteries = append(f.batteries, input)
	return f.err
}

func (f *fakeIngest) StoreMotor(_ context.Context, input service.MotorInput) error {
	f.motors = append(f.motors, input)
	return f.err
}

func (f *fakeIngest) StoreFault(_ context.Context, input service.FaultInput) error {
	f.faults = append(f.faults, input)
	return f.err
}

func TestHandleBattery(t *testing.T) {
	ingest := &fakeIngest{}
	handler := NewTelemetryHandler(ingest, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/internal/telemetry/battery", strings.NewReader(`{"charge_pct":72.5,"health":"Good"}`))
	rec := httptest.NewRecorder()
	handler.HandleBattery(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, ingest.batteries, 1)
	assert.Equal(t, 72.5, ingest.batteries[0].ChargePct)
	assert.Equal(t, "Good", ingest.batteries[0].Health)
}

func TestHandleRideInvalidJSON(t *testing.T) {
	ingest := &fakeIngest{}
	handler := NewTelemetryHandler(ingest, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/internal/telemetry/ride", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.HandleRide(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ingest.rides)
}

func TestHandleFaultStoreFailure(t *testing.T) {
	ingest := &fakeIngest{err: errors.New("db down")}
	handler := NewTelemetryHandler(ingest, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/internal/telemetry/fault", strings.NewReader(`{"message":"E01","status":"Active"}`))
	rec := httptest.NewRecorder()
	handler.HandleFault(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleMotor(t *testing.T) {
	ingest := &fakeIngest{}
	handler := NewTelemetryHandler(ingest, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/internal/telemetry/motor", strings.NewReader(`{"speed_kmh":48.2,"temperature_c":63.5}`))
	rec := httptest.NewRecorder()
	handler.HandleMotor(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, ingest.motors, 1)
	assert.Equal(t, 48.2, ingest.motors[0].SpeedKmh)
}
