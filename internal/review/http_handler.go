package review

import (
	"net/http"
	"strconv"

	"anirex/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type submitReviewReq struct {
	Text   string   `json:"text" validate:"required,notblank,max=5000"`
	Rating *float64 `json:"rating" validate:"required,gte=1,lte=10"`
}

// List handles GET /v1/anime/{id}/reviews
// @Summary List reviews for an anime
// @Description Reviews newest first with the average rating
// @Tags reviews
// @Produce json
// @Param id path int true "MyAnimeList id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/anime/{id}/reviews [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ItemIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid anime id", nil)
		return
	}

	listing, err := h.service.List(r.Context(), strconv.Itoa(id))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, listing, nil)
}

// Submit handles POST /v1/anime/{id}/reviews
// @Summary Submit a review
// @Description Rating must be between 1 and 10
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "MyAnimeList id"
// @Param request body submitReviewReq true "Review"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/anime/{id}/reviews [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Sign in to post a review", nil)
		return
	}

	id, ok := httpx.ItemIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid anime id", nil)
		return
	}

	var req submitReviewReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.ValidationFailed(w, r, errs)
		return
	}

	author := Author{ID: userID, DisplayName: httpx.UserNameFrom(r)}
	entry, err := h.service.Submit(r.Context(), author, SubmitCmd{
		ItemID: strconv.Itoa(id),
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, entry)
}
