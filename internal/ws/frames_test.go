package ws

import (
	"context"
	"encoding/json"
	"errors"
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

func decodeAck(t *testing.T, raw []byte) ackFrame {
	t.Helper()
	var ack ackFrame
	require.NoError(t, json.Unmarshal(raw, &ack))
	return ack
}

func TestProcessBatteryFrame(t *testing.T) {
	ingest := &fakeIngest{}
	processor := NewTelemetryProcessor(ingest, zap.NewNop())

	resp, err := processor.Process(context.Background(), "veh-1", []byte(`{"type":"battery","payload":{"charge_pct":88,"health":"Good"}}`))
	require.NoError(t, err)

	assert.Equal(t, "ack", decodeAck(t, resp).Type)
	require.Len(t, ingest.batteries, 1)
	assert.Equal(t, 88.0, ingest.batteries[0].ChargePct)
}

func TestProcessRideFrame(t *testing.T) {
	ingest := &fakeIngest{}
	processor := NewTelemetryProcessor(ingest, zap.NewNop())

	resp, err := processor.Process(context.Background(), "veh-1", []byte(`{"type":"ride","payload":{"distance_km":15.2,"recorded_at":"2026-08-30T10:00:00Z"}}`))
	require.NoError(t, err)

	assert.Equal(t, "ack", decodeAck(t, resp).Type)
	require.Len(t, ingest.rides, 1)
	assert.Equal(t, 15.2, ingest.rides[0].DistanceKm)
}

func TestProcessUnknownFrameType(t *testing.T) {
	processor := NewTelemetryProcessor(&fakeIngest{}, zap.NewNop())

	resp, err := processor.Process(context.Background(), "veh-1", []byte(`{"type":"gps","payload":{}}`))
	require.NoError(t, err)

	ack := decodeAck(t, resp)
	assert.Equal(t, "error", ack.Type)
	assert.Contains(t, ack.Reason, "unknown frame type")
}

func TestProcessMalformedFrame(t *testing.T) {
	processor := NewTelemetryProcessor(&fakeIngest{}, zap.NewNop())

	resp, err := processor.Process(context.Background(), "veh-1", []byte(`not json`))
	require.NoError(t, err)

	assert.Equal(t, "error", decodeAck(t, resp).Type)
}

func TestProcessStoreFailure(t *testing.T) {
	ingest := &fakeIngest{err: errors.New("db down")}
	processor := NewTelemetryProcessor(ingest, zap.NewNop())

	resp, err := processor.Process(context.Background(), "veh-1", []byte(`{"type":"fault","payload":{"message":"E01","status":"Active"}}`))
	require.NoError(t, err)

	ack := decodeAck(t, resp)
	assert.Equal(t, "error", ack.Type)
	assert.Contains(t, ack.Reason, "db down")
}
