package nlu

import (
	"context"
	"strings"
)

// KeywordClassifier is a built-in fallback used when no external NLU service
// is configured. It matches on keywords only and reports confidence 1.0.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the built-in classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var keywordIntents = []struct {
	intent   string
	keywords []string
}{
	{IntentBatteryStatus, []string{"battery", "charge", "charging"}},
	{IntentRideStatistics, []string{"ride", "distance", "traveled", "travelled", "trip"}},
	{IntentCheckFault, []string{"fault", "error", "problem", "issue"}},
}

// Parse matches the message against the keyword table.
func (k *KeywordClassifier) Parse(_ context.Context, text string) (Result, error) {
	lowered := strings.ToLower(text)
	for _, entry := range keywordIntents {
		for _, word := range entry.keywords {
			if strings.Contains(lowered, word) {
				return Result{
					Intent:     entry.intent,
					Confidence: 1.0,
					Ranking:    []Candidate{{Name: entry.intent, Confidence: 1.0}},
				}, nil
			}
		}
	}
	return Result{}, nil
}
