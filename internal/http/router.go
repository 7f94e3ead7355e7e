package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	Chat             http.HandlerFunc
	ChatHistory      http.HandlerFunc
	TelemetryRide    http.HandlerFunc
	TelemetryBattery http.HandlerFunc
	TelemetryMotor   http.HandlerFunc
	TelemetryFault   http.HandlerFunc
	Feed             http.HandlerFunc
	Health           http.HandlerFunc
	Static           http.Handler
}

// NewRouter registers endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Chat != nil {
		mux.Handle("/chat", method(http.MethodPost, routes.Chat))
	}
	if routes.ChatHistory != nil {
		mux.Handle("/chat/history", method(http.MethodGet, routes.ChatHistory))
	}
	if routes.TelemetryRide != nil {
		mux.Handle("/internal/telemetry/ride", method(http.MethodPost, routes.TelemetryRide))
	}
	if routes.TelemetryBattery != nil {
		mux.Handle("/internal/telemetry/battery", method(http.MethodPost, routes.TelemetryBattery))
	}
	if routes.TelemetryMotor != nil {
		mux.Handle("/internal/telemetry/motor", method(http.MethodPost, routes.TelemetryMotor))
	}
	if routes.TelemetryFault != nil {
		mux.Handle("/internal/telemetry/fault", method(http.MethodPost, routes.TelemetryFault))
	}
	if routes.Feed != nil {
		mux.Handle("/telemetry/ws", method(http.MethodGet, routes.Feed))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.Static != nil {
		mux.Handle("/", routes.Static)
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
