package handlers

//go:generate mockgen -source=evaluation.go -destination=evaluation_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/middlewares"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// EvaluationSubmitter creates or overwrites the caller's evaluation of a use case.
type EvaluationSubmitter interface {
	Submit(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error)
}

// EvaluationDeleter deletes an evaluation owned by the caller.
type EvaluationDeleter interface {
	Delete(ctx context.Context, caller *models.Identity, evaluationID uuid.UUID) error
}

// MyEvaluationsLister lists the caller's evaluations.
type MyEvaluationsLister interface {
	ListMine(ctx context.Context, caller *models.Identity) ([]models.EvaluationWithUseCase, error)
}

// SubmitEvaluationRequest represents the JSON body for an evaluation
// swagger:model SubmitEvaluationRequest
type SubmitEvaluationRequest struct {
	// HIGH, MEDIUM or LOW
	// required: true
	// default: HIGH
	Value string `json:"value" validate:"required,oneof=HIGH MEDIUM LOW"`
}

// NewSubmitEvaluationHandler returns an HTTP handler for evaluation upserts.
// @Summary Evaluate use case
// @Description Creates the caller's evaluation of a use case or overwrites the existing one
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path string true "Use case ID"
// @Param request body handlers.SubmitEvaluationRequest true "Evaluation"
// @Success 200 {object} models.EvaluationDB "Stored evaluation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Use case not found"
// @Router /usecases/{id}/evaluation [put]
// @Security BearerAuth
func NewSubmitEvaluationHandler(svc EvaluationSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		useCaseID, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid use case id")
			return
		}

		var req SubmitEvaluationRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		evaluation, err := svc.Submit(r.Context(), middlewares.GetIdentityFromContext(r.Context()), useCaseID, models.EvaluationValue(req.Value))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluation)
	}
}

// NewDeleteEvaluationHandler returns an HTTP handler deleting the caller's evaluation.
// @Summary Delete evaluation
// @Tags evaluations
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id} [delete]
// @Security BearerAuth
func NewDeleteEvaluationHandler(svc EvaluationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid evaluation id")
			return
		}

		if err := svc.Delete(r.Context(), middlewares.GetIdentityFromContext(r.Context()), id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMyEvaluationsHandler returns an HTTP handler listing the caller's evaluations.
// @Summary My evaluations
// @Description Returns the caller's evaluations with their use case, newest first
// @Tags evaluations
// @Produce json
// @Success 200 {array} models.EvaluationWithUseCase "Evaluations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /me/evaluations [get]
// @Security BearerAuth
func NewMyEvaluationsHandler(svc MyEvaluationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evaluations, err := svc.ListMine(r.Context(), middlewares.GetIdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if evaluations == nil {
			evaluations = []models.EvaluationWithUseCase{}
		}

		writeJSON(w, http.StatusOK, evaluations)
	}
}
