package handlers

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/middlewares"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// FavoriteToggler flips favorite membership.
type FavoriteToggler interface {
	Toggle(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID) (bool, error)
}

// ToggleFavoriteResponse reports membership after the toggle
// swagger:model ToggleFavoriteResponse
type ToggleFavoriteResponse struct {
	// default: true
	IsFavorite bool `json:"is_favorite"`
}

// NewToggleFavoriteHandler returns an HTTP handler toggling a favorite.
// @Summary Toggle favorite
// @Description Adds the use case to the caller's favorites, or removes it when already present
// @Tags favorites
// @Produce json
// @Param id path string true "Use case ID"
// @Success 200 {object} handlers.ToggleFavoriteResponse "Membership after the toggle"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Use case or user not found"
// @Router /usecases/{id}/favorite [post]
// @Security BearerAuth
func NewToggleFavoriteHandler(svc FavoriteToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		useCaseID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid use case id")
			return
		}

		isFavorite, err := svc.Toggle(r.Context(), middlewares.GetIdentityFromContext(r.Context()), useCaseID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToggleFavoriteResponse{IsFavorite: isFavorite})
	}
}
