// Package upstream implements the gameplay-data API client: score and
// beatmap fetches with bearer authentication. It is a thin I/O wrapper; all
// reconciliation happens downstream in the normalizer.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/normalize"
	"github.com/okian/scorecard/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// Client fetches raw records from the upstream API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scoreResponse mirrors the upstream score payload, with the beatmap and
// user records nested the way the API returns them.
type scoreResponse struct {
	Score   model.RawScoreRecord   `json:"score"`
	Beatmap model.RawBeatmapRecord `json:"beatmap"`
	User    model.RawUserRecord    `json:"user"`
}

// GetScore fetches one score with its beatmap and user records.
func (c *Client) GetScore(ctx context.Context, id int64) (normalize.Source, error) {
	var resp scoreResponse
	if err := c.get(ctx, fmt.Sprintf("%s/scores/%d", c.baseURL, id), "score", &resp); err != nil {
		return normalize.Source{}, err
	}
	score := resp.Score
	return normalize.Source{
		Score:   &score,
		Beatmap: resp.Beatmap,
		User:    &resp.User,
	}, nil
}

// GetBeatmap fetches one beatmap record.
func (c *Client) GetBeatmap(ctx context.Context, id int64) (model.RawBeatmapRecord, error) {
	var resp model.RawBeatmapRecord
	if err := c.get(ctx, fmt.Sprintf("%s/beatmaps/%d", c.baseURL, id), "beatmap", &resp); err != nil {
		return model.RawBeatmapRecord{}, err
	}
	return resp, nil
}

// get performs one authenticated GET and decodes the JSON body. 404 maps to
// ErrNotFound; every other failure wraps ErrUpstream. No retries here:
// token refresh and backoff belong to the caller's operational layer.
func (c *Client) get(ctx context.Context, url, operation string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamError(operation, "transport")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordUpstreamError(operation, "not_found")
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode != http.StatusOK:
		metrics.RecordUpstreamError(operation, "status")
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstreamError(operation, "decode")
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	metrics.RecordUpstreamLatency(float64(time.Since(start).Milliseconds()))
	return nil
}
