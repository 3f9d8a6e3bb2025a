package profile

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

// GetOwnProfile handles GET /v1/me/profile
// @Summary Get own profile
// @Description Get the authenticated user's profile, creating it on first access
// @Tags profiles
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me/profile [get]
func (h *HTTPHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, p, nil)
}

// UpdateProfile handles PATCH /v1/me/profile
// @Summary Update own profile
// @Description Update name, bio or phone of the authenticated user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateCommand true "Profile update request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me/profile [patch]
func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var cmd UpdateCommand
	if err := httpx.DecodeJSON(r, &cmd); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	p, err := h.service.Update(r.Context(), userID, cmd)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, p, nil)
}
