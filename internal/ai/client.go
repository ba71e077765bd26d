package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mindtrack/internal/config"
	"mindtrack/internal/goal"
)

// Client talks to the external feedback-generation service. The goal engine
// records whatever this service returns verbatim; no message text is composed
// on this side.
type Client struct {
	cfg  config.AIConfig
	http *http.Client
}

func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a feedback endpoint is configured
func (c *Client) Enabled() bool {
	return c.cfg.Endpoint != ""
}

// CheckinContext is the goal state shipped to the service for a check-in
type CheckinContext struct {
	Title         string            `json:"title"`
	Category      goal.Category     `json:"category"`
	Target        string            `json:"target"`
	Progress      int               `json:"progress"`
	CurrentStreak int               `json:"current_streak"`
	Responses     map[string]string `json:"responses,omitempty"`
}

// Feedback is the opaque triple the service returns
type Feedback struct {
	Kind    goal.FeedbackKind `json:"kind"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data,omitempty"`
}

// GenerateFeedback posts the check-in context and decodes the feedback triple
func (c *Client) GenerateFeedback(ctx context.Context, checkin CheckinContext) (*Feedback, error) {
	payload := map[string]any{
		"model":   c.cfg.Model,
		"checkin": checkin,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkin: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feedback service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feedback service returned status %d", resp.StatusCode)
	}

	var fb Feedback
	if err := json.NewDecoder(resp.Body).Decode(&fb); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	if !fb.Kind.Valid() {
		fb.Kind = goal.FeedbackSupport
	}
	return &fb, nil
}
