package catalog

import (
	"net/http"
	"strings"

	"anirex/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func pageParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	page, ok := httpx.IntQuery(r, "page", 1)
	if !ok || page < 1 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "page must be a positive integer", nil)
		return 0, false
	}
	return page, true
}

// Search handles GET /v1/anime
// @Summary Search the anime catalog
// @Tags catalog
// @Produce json
// @Param q query string false "Free text"
// @Param genre query int false "Genre id"
// @Param min_score query number false "Minimum score"
// @Param year query int false "Release year"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/anime [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}
	genre, okGenre := httpx.IntQuery(r, "genre", 0)
	minScore, okScore := httpx.FloatQuery(r, "min_score", 0)
	year, okYear := httpx.IntQuery(r, "year", 0)
	if !okGenre || !okScore || !okYear {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid filter value", nil)
		return
	}

	q := Query{
		Text:     strings.TrimSpace(r.URL.Query().Get("q")),
		GenreID:  genre,
		MinScore: minScore,
		Year:     year,
	}
	items, err := h.svc.Search(r.Context(), q, page)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, items, map[string]any{
		"page":  page,
		"count": len(items),
	})
}

// Get handles GET /v1/anime/{id}
// @Summary Get anime details
// @Tags catalog
// @Produce json
// @Param id path int true "MyAnimeList id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/anime/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ItemIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid anime id", nil)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, item, nil)
}

// Feed handles GET /v1/feeds/{category}
// @Summary List a category feed
// @Tags catalog
// @Produce json
// @Param category path string true "trending, popular, upcoming or all_time"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/feeds/{category} [get]
func (h *HTTPHandler) Feed(w http.ResponseWriter, r *http.Request) {
	category, err := ParseCategory(r.PathValue("category"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Feed(r.Context(), category, page)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, items, map[string]any{
		"category": string(category),
		"page":     page,
		"count":    len(items),
	})
}

// ListGenres handles GET /v1/genres
func (h *HTTPHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, Genres, nil)
}
