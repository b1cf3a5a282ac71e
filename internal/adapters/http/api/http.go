// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/scorecard/internal/adapters/upstream"
	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ScoreCard builds the layout for a score-backed card.
	ScoreCard(ctx context.Context, id int64, ov model.OverrideSet) (card.Layout, error)

	// MapCard builds the layout for a beatmap-preview card.
	MapCard(ctx context.Context, id int64, ov model.OverrideSet) (card.Layout, error)

	// RenderCard exports one layout as image bytes.
	RenderCard(ctx context.Context, l card.Layout) ([]byte, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	cardHandler   *CardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		cardHandler:   NewCardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/card/score/", MetricsMiddleware(s.cardHandler.HandleScoreCard, "card_score"))
	mux.HandleFunc("/card/map/", MetricsMiddleware(s.cardHandler.HandleMapCard, "card_map"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, upstream.ErrNotFound)
}
