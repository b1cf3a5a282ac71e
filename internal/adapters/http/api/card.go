// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
)

// CardHandler handles card layout and image requests.
type CardHandler struct {
	deps Dependencies
}

// NewCardHandler creates a new card handler.
func NewCardHandler(deps Dependencies) *CardHandler {
	return &CardHandler{deps: deps}
}

// HandleScoreCard handles GET /card/score/{id} and
// GET /card/score/{id}/image requests.
func (h *CardHandler) HandleScoreCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, wantImage, ok := parseCardPath(r.URL.Path, "/card/score/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	l, err := h.deps.ScoreCard(r.Context(), id, overridesFromQuery(r))
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}

	if !wantImage {
		writeJSON(w, http.StatusOK, l)
		return
	}
	img, err := h.deps.RenderCard(r.Context(), l)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_error", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="scorecard.png"`)
	_, _ = w.Write(img)
}

// HandleMapCard handles GET /card/map/{id} requests: the beatmap-preview
// card shown before any score exists.
func (h *CardHandler) HandleMapCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, wantImage, ok := parseCardPath(r.URL.Path, "/card/map/")
	if !ok || wantImage {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	l, err := h.deps.MapCard(r.Context(), id, overridesFromQuery(r))
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// parseCardPath extracts the numeric id after prefix, plus whether the
// optional trailing "/image" segment is present.
func parseCardPath(path, prefix string) (id int64, wantImage, ok bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" {
		return 0, false, false
	}
	if s, found := strings.CutSuffix(rest, "/image"); found {
		rest = s
		wantImage = true
	}
	if strings.Contains(rest, "/") {
		return 0, false, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, false
	}
	return id, wantImage, true
}

// overridesFromQuery builds the per-request override set from query
// parameters. Every field is optional; malformed values are carried as-is
// and degraded downstream by the normalizer, never rejected here.
func overridesFromQuery(r *http.Request) model.OverrideSet {
	q := r.URL.Query()
	return model.OverrideSet{
		Title:      q.Get("title"),
		Version:    q.Get("version"),
		Creator:    q.Get("creator"),
		Username:   q.Get("username"),
		Score:      q.Get("score"),
		Combo:      q.Get("combo"),
		Accuracy:   q.Get("accuracy"),
		Rank:       q.Get("rank"),
		PP:         q.Get("pp"),
		GlobalRank: q.Get("global_rank"),
		StarRating: q.Get("stars"),
		Count300:   q.Get("count_300"),
		Count100:   q.Get("count_100"),
		Count50:    q.Get("count_50"),
		Miss:       q.Get("miss"),
		SliderTail: q.Get("slider_tail"),
		Mods:       q.Get("mods"),
		ForceMode:  model.ModeToggle(q.Get("mode")),
	}
}
