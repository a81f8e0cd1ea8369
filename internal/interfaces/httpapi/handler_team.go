package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	division := r.PathValue("division")
	items, err := h.teamService.ListTeamsByDivision(ctx, division)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
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

	item, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Division:      req.Division,
		Name:          req.Name,
		Baseline:      baselineFromPayload(req.Baseline),
		PenaltyPoints: req.PenaltyPoints,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "division", req.Division, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenameTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req renameTeamRequest
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

	item, err := h.teamService.RenameTeam(ctx, teamID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) SetTeamBaseline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetTeamBaseline")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req setBaselineRequest
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

	item, err := h.teamService.SetBaseline(ctx, teamID, baselineFromPayload(req.Baseline))
	if err != nil {
		h.logger.WarnContext(ctx, "set team baseline failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) SetTeamPenalty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetTeamPenalty")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req setPenaltyRequest
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

	item, err := h.teamService.SetPenaltyPoints(ctx, teamID, req.PenaltyPoints)
	if err != nil {
		h.logger.WarnContext(ctx, "set team penalty failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": teamID})
}
