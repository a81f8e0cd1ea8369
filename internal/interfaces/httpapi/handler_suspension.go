package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/usecase"
)

func (h *Handler) ListSuspensions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuspensions")
	defer span.End()

	division := r.PathValue("division")
	onlyActive := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("active")), "true")

	items, err := h.suspensionService.ListSuspensions(ctx, division, onlyActive)
	if err != nil {
		h.logger.WarnContext(ctx, "list suspensions failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]suspensionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, suspensionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SetSuspensionGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetSuspensionGames")
	defer span.End()

	suspensionID := r.PathValue("suspensionID")

	var req setSuspensionGamesRequest
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

	item, err := h.suspensionService.SetGames(ctx, suspensionID, req.Games)
	if err != nil {
		h.logger.WarnContext(ctx, "set suspension games failed", "suspension_id", suspensionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionToDTO(item))
}

func (h *Handler) ServeSuspension(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeSuspension")
	defer span.End()

	suspensionID := r.PathValue("suspensionID")
	item, err := h.suspensionService.MarkServed(ctx, suspensionID)
	if err != nil {
		h.logger.WarnContext(ctx, "serve suspension failed", "suspension_id", suspensionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionToDTO(item))
}
