package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	division := r.PathValue("division")
	filter, err := matchFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListMatches(ctx, division, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func matchFilterFromQuery(r *http.Request) (match.Filter, error) {
	var filter match.Filter

	if raw := strings.TrimSpace(r.URL.Query().Get("round")); raw != "" {
		round, err := strconv.Atoi(raw)
		if err != nil || round < 1 {
			return match.Filter{}, fmt.Errorf("%w: round must be a positive integer", usecase.ErrInvalidInput)
		}
		filter.Round = &round
	}

	switch status := strings.TrimSpace(r.URL.Query().Get("status")); status {
	case "":
	case match.StatusScheduled, match.StatusFinished:
		filter.Status = status
	default:
		return match.Filter{}, fmt.Errorf("%w: unknown match status %q", usecase.ErrInvalidInput, status)
	}

	return filter, nil
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.ScheduleMatch(ctx, usecase.ScheduleMatchInput{
		Division:   req.Division,
		Round:      req.Round,
		KickoffAt:  req.KickoffAt,
		Field:      req.Field,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "division", req.Division, "round", req.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": matchID})
}

func (h *Handler) FinalizeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatch")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req finalizeMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	cards := make(map[string]match.CardEntry, len(req.Cards))
	for playerID, entry := range req.Cards {
		cards[playerID] = match.CardEntry{
			Yellows:   entry.Yellows,
			RedDirect: entry.RedDirect,
		}
	}

	item, err := h.matchService.FinalizeMatch(ctx, usecase.FinalizeMatchInput{
		MatchID:      matchID,
		HomeScore:    req.HomeScore,
		AwayScore:    req.AwayScore,
		Forfeit:      req.Forfeit,
		ForfeitGoals: req.ForfeitGoals,
		Cards:        cards,
		Goals:        req.Goals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "finalize match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
