package collection

import (
	"net/http"

	"anirex/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func kindParam(w http.ResponseWriter, r *http.Request) (Kind, bool) {
	kind, err := ParseKind(r.PathValue("kind"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Unknown collection", nil)
		return "", false
	}
	return kind, true
}

// List handles GET /v1/me/{kind}
// @Summary List favorites or watchlist
// @Tags collections
// @Produce json
// @Security Bearer
// @Param kind path string true "favorites or watchlist"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/me/{kind} [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), httpx.UserIDFrom(r), kind)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{"kind": kind, "count": len(entries)})
}

// Add handles PUT /v1/me/{kind}/{id}
// @Summary Add an anime to favorites or watchlist
// @Tags collections
// @Produce json
// @Security Bearer
// @Param kind path string true "favorites or watchlist"
// @Param id path int true "Anime id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/me/{kind}/{id} [put]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	itemID, ok := httpx.ItemIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid anime ID", nil)
		return
	}

	entry, err := h.service.Add(r.Context(), httpx.UserIDFrom(r), kind, itemID)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, entry, nil)
}

// Remove handles DELETE /v1/me/{kind}/{id}
// @Summary Remove an anime from favorites or watchlist
// @Tags collections
// @Security Bearer
// @Param kind path string true "favorites or watchlist"
// @Param id path int true "Anime id"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/me/{kind}/{id} [delete]
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	itemID, ok := httpx.ItemIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid anime ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), httpx.UserIDFrom(r), kind, itemID); err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
