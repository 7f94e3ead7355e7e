package nlu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"battery", "How is my battery?", IntentBatteryStatus},
		{"charge", "what's the CHARGE level", IntentBatteryStatus},
		{"distance", "show ride distance please", IntentRideStatistics},
		{"traveled", "how far have I traveled today", IntentRideStatistics},
		{"fault", "any fault codes?", IntentCheckFault},
		{"error", "is there an error on the dashboard", IntentCheckFault},
		{"no match", "tell me a joke", ""},
		{"empty", "", ""},
	}

	classifier := NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := classifier.Parse(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Intent)
			if tt.want != "" {
				assert.Equal(t, 1.0, result.Confidence)
			}
		})
	}
}
