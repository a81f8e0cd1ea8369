package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/futliga/liga-api/internal/usecase"
)

// Player photos come in as multipart uploads; anything past this is
// rejected before the form is parsed.
const maxPlayerFormBytes = 8 << 20

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	items, err := h.playerService.ListTeamPlayers(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxPlayerFormBytes)
	if err := r.ParseMultipartForm(maxPlayerFormBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}

	teamID := strings.TrimSpace(r.FormValue("team_id"))
	name := strings.TrimSpace(r.FormValue("name"))
	ageRaw := strings.TrimSpace(r.FormValue("age"))
	if teamID == "" || name == "" || ageRaw == "" {
		writeError(ctx, w, fmt.Errorf("%w: team_id, name and age are required", usecase.ErrInvalidInput))
		return
	}
	age, err := strconv.Atoi(ageRaw)
	if err != nil || age < 1 {
		writeError(ctx, w, fmt.Errorf("%w: age must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	photo, contentType, err := readFormPhoto(r, "photo")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.RegisterPlayer(ctx, usecase.RegisterPlayerInput{
		TeamID:           teamID,
		Name:             name,
		Age:              age,
		Photo:            photo,
		PhotoContentType: contentType,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

// readFormPhoto reads the named file part. A missing part is not an
// error; the player is simply registered without a photo.
func readFormPhoto(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: invalid %s upload: %v", usecase.ErrInvalidInput, field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read %s upload: %v", usecase.ErrInvalidInput, field, err)
	}
	if len(data) == 0 {
		return nil, "", nil
	}

	return data, partContentType(header), nil
}

func partContentType(header *multipart.FileHeader) string {
	if header == nil {
		return ""
	}
	return header.Header.Get("Content-Type")
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": playerID})
}
