package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"vehicleassist/internal/service"
)

// IngestService is the subset of the ingest service the feed endpoints need.
type IngestService interface {
	StoreRide(ctx context.Context, input service.RideInput) error
	StoreBattery(ctx context.Context, input service.BatteryInput) error
	StoreMotor(ctx context.Context, input service.MotorInput) error
	StoreFault(ctx context.Context, input service.FaultInput) error
}

// TelemetryHandler holds the internal feed ingest endpoints.
type TelemetryHandler struct {
	svc    IngestService
	logger *zap.Logger
}

// NewTelemetryHandler builds handler set.
func NewTelemetryHandler(svc IngestService, logger *zap.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandleRide handles POST /internal/telemetry/ride.
func (h *TelemetryHandler) HandleRide(w http.ResponseWriter, r *http.Request) {
	var input service.RideInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.StoreRide(r.Context(), input); err != nil {
		h.logger.Error("store ride failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store ride")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// HandleBattery handles POST /internal/telemetry/battery.
func (h *TelemetryHandler) HandleBattery(w http.ResponseWriter, r *http.Request) {
	var input service.BatteryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.StoreBattery(r.Context(), input); err != nil {
		h.logger.Error("store battery failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store battery")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// HandleMotor handles POST /internal/telemetry/motor.
func (h *TelemetryHandler) HandleMotor(w http.ResponseWriter, r *http.Request) {
	var input service.MotorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.StoreMotor(r.Context(), input); err != nil {
		h.logger.Error("store motor failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store motor")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// HandleFault handles POST /internal/telemetry/fault.
func (h *TelemetryHandler) HandleFault(w http.ResponseWriter, r *http.Request) {
	var input service.FaultInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.StoreFault(r.Context(), input); err != nil {
		h.logger.Error("store fault failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store fault")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}
