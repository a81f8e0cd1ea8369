package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/domain/contact"
	"github.com/futliga/liga-api/internal/usecase"
)

const maxAlbumFormBytes = 64 << 20

func (h *Handler) ListAvisos(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAvisos")
	defer span.End()

	items, err := h.avisoService.ListAvisos(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list avisos failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]avisoDTO, 0, len(items))
	for _, item := range items {
		out = append(out, avisoToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) PublishAviso(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishAviso")
	defer span.End()

	var req publishAvisoRequest
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

	item, err := h.avisoService.PublishAviso(ctx, req.Title, req.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "publish aviso failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, avisoToDTO(item))
}

func (h *Handler) DeleteAviso(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAviso")
	defer span.End()

	avisoID := r.PathValue("avisoID")
	if err := h.avisoService.DeleteAviso(ctx, avisoID); err != nil {
		h.logger.WarnContext(ctx, "delete aviso failed", "aviso_id", avisoID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": avisoID})
}

func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitContactMessage")
	defer span.End()

	var req submitContactRequest
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

	item, err := h.contactService.SubmitMessage(ctx, req.Name, req.Email, req.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "submit contact message failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, contactMessageToDTO(item))
}

func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContactMessages")
	defer span.End()

	page, err := contactPageFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.contactService.ListInbox(ctx, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list contact messages failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]contactMessageDTO, 0, len(items))
	for _, item := range items {
		out = append(out, contactMessageToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func contactPageFromQuery(r *http.Request) (contact.Page, error) {
	var page contact.Page

	if raw := strings.TrimSpace(r.URL.Query().Get("page_size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return contact.Page{}, fmt.Errorf("%w: page_size must be a positive integer", usecase.ErrInvalidInput)
		}
		page.Limit = size
	}
	page.StartAfter = strings.TrimSpace(r.URL.Query().Get("start_after"))
	page.EndBefore = strings.TrimSpace(r.URL.Query().Get("end_before"))

	return page, nil
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAlbums")
	defer span.End()

	items, err := h.albumService.ListAlbums(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list albums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]albumDTO, 0, len(items))
	for _, item := range items {
		out = append(out, albumToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAlbum")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxAlbumFormBytes)
	if err := r.ParseMultipartForm(maxAlbumFormBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		writeError(ctx, w, fmt.Errorf("%w: title is required", usecase.ErrInvalidInput))
		return
	}

	var photos []usecase.AlbumPhotoInput
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				writeError(ctx, w, fmt.Errorf("%w: invalid photo upload: %v", usecase.ErrInvalidInput, err))
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				writeError(ctx, w, fmt.Errorf("%w: read photo upload: %v", usecase.ErrInvalidInput, err))
				return
			}
			if len(data) == 0 {
				continue
			}
			photos = append(photos, usecase.AlbumPhotoInput{
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	item, err := h.albumService.CreateAlbum(ctx, title, photos)
	if err != nil {
		h.logger.WarnContext(ctx, "create album failed", "title", title, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, albumToDTO(item))
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAlbum")
	defer span.End()

	albumID := r.PathValue("albumID")
	if err := h.albumService.DeleteAlbum(ctx, albumID); err != nil {
		h.logger.WarnContext(ctx, "delete album failed", "album_id", albumID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": albumID})
}
