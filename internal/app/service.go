// Package app provides the core business service behind the HTTP API: it
// turns score or beatmap identifiers plus user overrides into assembled
// card layouts, and hands finished layouts to the exporter.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/scorecard/internal/adapters/counter"
	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/normalize"
	"github.com/okian/scorecard/pkg/logger"
)

// ScoreFetcher fetches one score bundle from the upstream API.
type ScoreFetcher interface {
	GetScore(ctx context.Context, id int64) (normalize.Source, error)
}

// MapFetcher fetches one beatmap record from the upstream API.
type MapFetcher interface {
	GetBeatmap(ctx context.Context, id int64) (model.RawBeatmapRecord, error)
}

// Exporter rasterizes an assembled layout into image bytes.
type Exporter interface {
	Export(ctx context.Context, l card.Layout) ([]byte, error)
}

// Service implements the API dependencies for the scorecard system.
type Service struct {
	scores    ScoreFetcher
	maps      MapFetcher
	assembler *card.Assembler
	exporter  Exporter
	counter   counter.Store
	logger    logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExporter wires the external rasterizer.
func WithExporter(e Exporter) Option {
	return func(s *Service) {
		s.exporter = e
	}
}

// WithCounter wires the on-disk render counter.
func WithCounter(c counter.Store) Option {
	return func(s *Service) {
		s.counter = c
	}
}

// New constructs a Service. Fetchers and the assembler are required; the
// exporter and counter are optional collaborators.
func New(scores ScoreFetcher, maps MapFetcher, assembler *card.Assembler, opts ...Option) *Service {
	s := &Service{
		scores:    scores,
		maps:      maps,
		assembler: assembler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreCard builds the layout for a score-backed card. Only the fetch can
// fail; normalization and assembly degrade to defaults instead.
func (s *Service) ScoreCard(ctx context.Context, id int64, ov model.OverrideSet) (card.Layout, error) {
	src, err := s.scores.GetScore(ctx, id)
	if err != nil {
		return card.Layout{}, fmt.Errorf("score card %d: %w", id, err)
	}
	return s.assembler.Assemble(normalize.Normalize(src, ov)), nil
}

// MapCard builds the layout for a beatmap-preview card (map id typed, no
// score yet).
func (s *Service) MapCard(ctx context.Context, id int64, ov model.OverrideSet) (card.Layout, error) {
	bm, err := s.maps.GetBeatmap(ctx, id)
	if err != nil {
		return card.Layout{}, fmt.Errorf("map card %d: %w", id, err)
	}
	return s.assembler.Assemble(normalize.Normalize(normalize.Source{Beatmap: bm}, ov)), nil
}

// RenderCard exports one layout as image bytes, bumping the render counter
// on success. A counter failure only logs; the image is already made.
func (s *Service) RenderCard(ctx context.Context, l card.Layout) ([]byte, error) {
	if s.exporter == nil {
		return nil, ErrNoExporter
	}
	img, err := s.exporter.Export(ctx, l)
	if err != nil {
		return nil, err
	}
	if s.counter != nil {
		if _, cerr := s.counter.Increment(ctx); cerr != nil && s.logger != nil {
			s.logger.Warn(ctx, "render counter increment failed", logger.Error(cerr))
		}
	}
	return img, nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"exporter_configured": s.exporter != nil,
		"time":                time.Now().UTC().Format(time.RFC3339),
	}
	if s.counter != nil {
		if v, err := s.counter.Value(context.Background()); err == nil {
			stats["cards_rendered"] = v
		}
	}
	return stats
}
