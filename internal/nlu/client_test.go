package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newParseServer(t *testing.T, status int, response parseResponse) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/model/parse", r.URL.Path)

		var req parseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Text)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClientParse(t *testing.T) {
	server := newParseServer(t, http.StatusOK, parseResponse{
		Intent: Candidate{Name: IntentBatteryStatus, Confidence: 0.93},
		IntentRanking: []Candidate{
			{Name: IntentBatteryStatus, Confidence: 0.93},
			{Name: IntentCheckFault, Confidence: 0.04},
		},
	})

	client := NewClient(server.URL, 0.6, time.Second, zap.NewNop())
	result, err := client.Parse(context.Background(), "how is my battery doing?")
	require.NoError(t, err)

	assert.Equal(t, IntentBatteryStatus, result.Intent)
	assert.InDelta(t, 0.93, result.Confidence, 0.0001)
	assert.Len(t, result.Ranking, 2)
}

func TestClientParseBelowThreshold(t *testing.T) {
	server := newParseServer(t, http.StatusOK, parseResponse{
		Intent: Candidate{Name: IntentRideStatistics, Confidence: 0.31},
	})

	client := NewClient(server.URL, 0.6, time.Second, zap.NewNop())
	result, err := client.Parse(context.Background(), "hmm")
	require.NoError(t, err)

	assert.Empty(t, result.Intent)
}

func TestClientParseMissingIntent(t *testing.T) {
	server := newParseServer(t, http.StatusOK, parseResponse{})

	client := NewClient(server.URL, 0.6, time.Second, zap.NewNop())
	result, err := client.Parse(context.Background(), "hello")
	require.NoError(t, err)

	assert.Empty(t, result.Intent)
}

func TestClientParseServerError(t *testing.T) {
	server := newParseServer(t, http.StatusInternalServerError, parseResponse{})

	client := NewClient(server.URL, 0.6, time.Second, zap.NewNop())
	_, err := client.Parse(context.Background(), "hello")
	require.Error(t, err)
}

func TestClientParseUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 0.6, 100*time.Millisecond, zap.NewNop())
	_, err := client.Parse(context.Background(), "hello")
	require.Error(t, err)
}
