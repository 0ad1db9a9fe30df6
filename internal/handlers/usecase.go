package handlers

//go:generate mockgen -source=usecase.go -destination=usecase_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/middlewares"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// UseCaseLister lists the catalog.
type UseCaseLister interface {
	List(ctx context.Context) ([]models.UseCaseSummary, error)
}

// UseCaseGetter returns a single use case, or nil for an unknown id.
type UseCaseGetter interface {
	Get(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID) (*models.UseCaseDetail, error)
}

// UseCaseRanker returns the top use cases.
type UseCaseRanker interface {
	Top(ctx context.Context, caller *models.Identity) ([]models.RankedUseCase, error)
}

// UseCaseStatsGetter returns dashboard counters.
type UseCaseStatsGetter interface {
	Stats(ctx context.Context) (*models.UseCaseStats, error)
}

// UseCaseCreator creates use cases.
type UseCaseCreator interface {
	Create(ctx context.Context, caller *models.Identity, uc models.UseCaseDB) (*models.UseCaseDB, error)
}

// UseCaseUpdater applies partial updates to use cases.
type UseCaseUpdater interface {
	Update(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID, patch models.UseCasePatch) (*models.UseCaseDB, error)
}

// CreateUseCaseRequest represents the JSON body for creating a use case
// swagger:model CreateUseCaseRequest
type CreateUseCaseRequest struct {
	// required: true
	// default: Invoice classification
	Title string `json:"title" validate:"required,max=500"`

	// required: true
	Description string `json:"description" validate:"required"`

	// required: true
	// default: Finance
	BusinessArea string `json:"business_area" validate:"required,max=255"`

	// required: true
	// default: Draft
	MaturityLevel string `json:"maturity_level" validate:"required,max=64"`

	ProblemStatement    *string `json:"problem_statement,omitempty"`
	SolutionDescription *string `json:"solution_description,omitempty"`
	BusinessValue       *string `json:"business_value,omitempty"`
	TechStack           *string `json:"tech_stack,omitempty"`
	EffortEstimation    *string `json:"effort_estimation,omitempty"`
	RiskAssessment      *string `json:"risk_assessment,omitempty"`

	// default: MEDIUM
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
}

// UpdateUseCaseRequest represents the JSON body for a partial use case update.
// Omitted fields are left unchanged.
// swagger:model UpdateUseCaseRequest
type UpdateUseCaseRequest struct {
	Title               *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Description         *string `json:"description,omitempty"`
	BusinessArea        *string `json:"business_area,omitempty" validate:"omitempty,min=1,max=255"`
	MaturityLevel       *string `json:"maturity_level,omitempty" validate:"omitempty,min=1,max=64"`
	ProblemStatement    *string `json:"problem_statement,omitempty"`
	SolutionDescription *string `json:"solution_description,omitempty"`
	BusinessValue       *string `json:"business_value,omitempty"`
	TechStack           *string `json:"tech_stack,omitempty"`
	EffortEstimation    *string `json:"effort_estimation,omitempty"`
	RiskAssessment      *string `json:"risk_assessment,omitempty"`
	Priority            *string `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
}

func (req UpdateUseCaseRequest) patch() models.UseCasePatch {
	return models.UseCasePatch{
		Title:               req.Title,
		Description:         req.Description,
		BusinessArea:        req.BusinessArea,
		MaturityLevel:       req.MaturityLevel,
		ProblemStatement:    req.ProblemStatement,
		SolutionDescription: req.SolutionDescription,
		BusinessValue:       req.BusinessValue,
		TechStack:           req.TechStack,
		EffortEstimation:    req.EffortEstimation,
		RiskAssessment:      req.RiskAssessment,
		Priority:            req.Priority,
	}
}

// NewListUseCasesHandler returns an HTTP handler listing all use cases.
// @Summary List use cases
// @Description Returns every use case with its evaluations, newest first
// @Tags usecases
// @Produce json
// @Success 200 {array} models.UseCaseSummary "Use cases"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /usecases [get]
func NewListUseCasesHandler(svc UseCaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		useCases, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, useCases)
	}
}

// NewGetUseCaseHandler returns an HTTP handler for a single use case.
// @Summary Get use case
// @Description Returns one use case with its evaluations and the caller's favorite flag
// @Tags usecases
// @Produce json
// @Param id path string true "Use case ID"
// @Success 200 {object} models.UseCaseDetail "Use case"
// @Failure 400 {object} handlers.ErrorResponse "Invalid use case id"
// @Failure 404 {object} handlers.ErrorResponse "Use case not found"
// @Router /usecases/{id} [get]
func NewGetUseCaseHandler(svc UseCaseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid use case id")
			return
		}

		detail, err := svc.Get(r.Context(), middlewares.GetIdentityFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if detail == nil {
			writeError(w, http.StatusNotFound, "Use case not found")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

// NewTopUseCasesHandler returns an HTTP handler for the ranking.
// @Summary Top use cases
// @Description Returns up to 10 use cases ordered by weighted evaluation score (HIGH=3, MEDIUM=2, LOW=1)
// @Tags usecases
// @Produce json
// @Success 200 {array} models.RankedUseCase "Ranking"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /usecases/top [get]
// @Security BearerAuth
func NewTopUseCasesHandler(svc UseCaseRanker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, err := svc.Top(r.Context(), middlewares.GetIdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ranked)
	}
}

// NewUseCaseStatsHandler returns an HTTP handler for dashboard counters.
// @Summary Use case statistics
// @Description Returns the total number of use cases and the count per maturity level
// @Tags usecases
// @Produce json
// @Success 200 {object} models.UseCaseStats "Statistics"
// @Router /usecases/stats [get]
func NewUseCaseStatsHandler(svc UseCaseStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// NewCreateUseCaseHandler returns an HTTP handler creating a use case.
// @Summary Create use case
// @Tags usecases
// @Accept json
// @Produce json
// @Param request body handlers.CreateUseCaseRequest true "Use case"
// @Success 201 {object} models.UseCaseDB "Created use case"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 409 {object} handlers.ErrorResponse "Use case title already exists"
// @Router /usecases [post]
// @Security BearerAuth
func NewCreateUseCaseHandler(svc UseCaseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUseCaseRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.Create(r.Context(), middlewares.GetIdentityFromContext(r.Context()), models.UseCaseDB{
			Title:               req.Title,
			Description:         req.Description,
			BusinessArea:        req.BusinessArea,
			MaturityLevel:       req.MaturityLevel,
			ProblemStatement:    req.ProblemStatement,
			SolutionDescription: req.SolutionDescription,
			BusinessValue:       req.BusinessValue,
			TechStack:           req.TechStack,
			EffortEstimation:    req.EffortEstimation,
			RiskAssessment:      req.RiskAssessment,
			Priority:            req.Priority,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		logger.Log.Infow("use case created", "useCaseID", created.UseCaseID, "title", created.Title)
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdateUseCaseHandler returns an HTTP handler for partial use case updates.
// @Summary Update use case
// @Tags usecases
// @Accept json
// @Produce json
// @Param id path string true "Use case ID"
// @Param request body handlers.UpdateUseCaseRequest true "Fields to change"
// @Success 200 {object} models.UseCaseDB "Updated use case"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Use case not found"
// @Router /usecases/{id} [patch]
// @Security BearerAuth
func NewUpdateUseCaseHandler(svc UseCaseUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid use case id")
			return
		}

		var req UpdateUseCaseRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch := req.patch()
		if patch.Empty() {
			writeError(w, http.StatusBadRequest, "No fields to update")
			return
		}

		updated, err := svc.Update(r.Context(), middlewares.GetIdentityFromContext(r.Context()), id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
