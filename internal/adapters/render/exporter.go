// Package render delegates rasterization of an assembled layout to the
// external exporter service. Export is best-effort: the exporter proceeds
// with whatever visual elements load within its bounded wait, and a failure
// here never invalidates the caller's current layout.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/pkg/metrics"
)

const defaultWait = 15 * time.Second

// Exporter posts layouts to the rasterizer endpoint and returns image bytes.
type Exporter struct {
	endpoint   string
	httpClient *http.Client
	wait       time.Duration
}

// Option applies a configuration option to the Exporter.
type Option func(*Exporter)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(e *Exporter) {
		if hc != nil {
			e.httpClient = hc
		}
	}
}

// WithWait bounds how long one export may take end to end.
func WithWait(d time.Duration) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.wait = d
		}
	}
}

// New creates an Exporter for the given rasterizer endpoint.
func New(endpoint string, opts ...Option) *Exporter {
	e := &Exporter{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		wait:       defaultWait,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export rasterizes one layout. Each job carries a fresh id so exporter-side
// logs correlate with ours. Failures wrap ErrRender and are not retried.
func (e *Exporter) Export(ctx context.Context, l card.Layout) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.wait)
	defer cancel()

	body, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("%w: encode layout: %v", ErrRender, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Render-Job", uuid.NewString())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		metrics.RecordRenderError()
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordRenderError()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRender, resp.StatusCode)
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordRenderError()
		return nil, fmt.Errorf("%w: read image: %v", ErrRender, err)
	}

	metrics.RecordRender(float64(time.Now().Unix()))
	return img, nil
}
