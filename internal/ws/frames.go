package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"vehicleassist/internal/service"
)

// Frame types accepted from the vehicle feed.
const (
	FrameRide    = "ride"
	FrameBattery = "battery"
	FrameMotor   = "motor"
	FrameFault   = "fault"
)

// Frame is one telemetry message from a vehicle.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ackFrame struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

// Ingest is the subset of the ingest service the feed needs.
type Ingest interface {
	StoreRide(ctx context.Context, input service.RideInput) error
	StoreBattery(ctx context.Context, input service.BatteryInput) error
	StoreMotor(ctx context.Context, input service.MotorInput) error
	StoreFault(ctx context.Context, input service.FaultInput) error
}

// TelemetryProcessor decodes feed frames and stores them.
type TelemetryProcessor struct {
	ingest Ingest
	logger *zap.Logger
}

// NewTelemetryProcessor builds processor.
func NewTelemetryProcessor(ingest Ingest, logger *zap.Logger) *TelemetryProcessor {
	return &TelemetryProcessor{ingest: ingest, logger: logger}
}

// Process handles one raw frame and returns the ack to send back.
func (p *TelemetryProcessor) Process(ctx context.Context, vehicleID string, raw []byte) ([]byte, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return errorAck(fmt.Sprintf("invalid frame: %v", err))
	}

	if err := p.store(ctx, frame); err != nil {
		p.logger.Warn("frame store failed",
			zap.String("vehicle_id", vehicleID),
			zap.String("frame_type", frame.Type),
			zap.Error(err))
		return errorAck(err.Error())
	}

	return json.Marshal(ackFrame{Type: "ack"})
}

func (p *TelemetryProcessor) store(ctx context.Context, frame Frame) error {
	switch frame.Type {
	case FrameRide:
		var input service.RideInput
		if err := json.Unmarshal(frame.Payload, &input); err != nil {
			return fmt.Errorf("invalid ride payload: %w", err)
		}
		return p.ingest.StoreRide(ctx, input)
	case FrameBattery:
		var input service.BatteryInput
		if err := json.Unmarshal(frame.Payload, &input); err != nil {
			return fmt.Errorf("invalid battery payload: %w", err)
		}
		return p.ingest.StoreBattery(ctx, input)
	case FrameMotor:
		var input service.MotorInput
		if err := json.Unmarshal(frame.Payload, &input); err != nil {
			return fmt.Errorf("invalid motor payload: %w", err)
		}
		return p.ingest.StoreMotor(ctx, input)
	case FrameFault:
		var input service.FaultInput
		if err := json.Unmarshal(frame.Payload, &input); err != nil {
			return fmt.Errorf("invalid fault payload: %w", err)
		}
		return p.ingest.StoreFault(ctx, input)
	default:
		return fmt.Errorf("unknown frame type %q", frame.Type)
	}
}

func errorAck(reason string) ([]byte, error) {
	return json.Marshal(ackFrame{Type: "error", Reason: reason})
}
