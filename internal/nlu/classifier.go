package nlu

import "context"

// Intent names recognized by the dispatcher.
const (
	IntentBatteryStatus  = "battery_status"
	IntentRideStatistics = "ride_statistics"
	IntentCheckFault     = "check_fault"
)

// Candidate is one ranked classification result.
type Candidate struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Result carries the winning intent and the full ranking. An empty Intent
// means the classifier could not place the message above its threshold and
// the caller should take the fallback branch.
type Result struct {
	Intent     string
	Confidence float64
	Ranking    []Candidate
}

// Classifier maps a free-text message to an intent.
type Classifier interface {
	Parse(ctx context.Context, text string) (Result, error)
}
