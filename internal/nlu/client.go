package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client calls an external NLU service to classify messages.
type Client struct {
	baseURL   string
	threshold float64
	client    *http.Client
	logger    *zap.Logger
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Intent        Candidate   `json:"intent"`
	IntentRanking []Candidate `json:"intent_ranking"`
}

// NewClient returns client wrapper. Candidates scoring below threshold are
// reported as the empty intent.
func NewClient(baseURL string, threshold float64, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		threshold: threshold,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Parse sends the message to the NLU model parse endpoint.
func (c *Client) Parse(ctx context.Context, text string) (Result, error) {
	data, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/model/parse", c.baseURL), bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn("nlu request failed", zap.Error(err))
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Warn("nlu returned non-success", zap.Int("status", resp.StatusCode))
		return Result{}, fmt.Errorf("nlu: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, fmt.Errorf("nlu: decode response: %w", err)
	}

	result := Result{
		Intent:     parsed.Intent.Name,
		Confidence: parsed.Intent.Confidence,
		Ranking:    parsed.IntentRanking,
	}
	if result.Intent == "" || result.Confidence < c.threshold {
		c.logger.Debug("nlu below threshold",
			zap.String("intent", result.Intent),
			zap.Float64("confidence", result.Confidence))
		result.Intent = ""
	}
	return result, nil
}
