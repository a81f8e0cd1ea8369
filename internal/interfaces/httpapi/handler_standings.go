package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	division := r.PathValue("division")
	rows, err := h.standingsService.Standings(ctx, division)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScorers")
	defer span.End()

	division := r.PathValue("division")
	entries, err := h.scorerService.TopScorers(ctx, division)
	if err != nil {
		h.logger.WarnContext(ctx, "list scorers failed", "division", division, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]scorerDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, scorerToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
