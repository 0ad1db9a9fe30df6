package models

import (
	"time"

	"github.com/google/uuid"
)

// Maturity level labels used by the default import format.
const (
	MaturityDraft      = "Draft"
	MaturityPilot      = "Pilot"
	MaturityProduction = "Production"
)

// MaxTitleLength is the title column width in characters.
const MaxTitleLength = 500

// UseCaseDB represents a use case row in the database
type UseCaseDB struct {
	UseCaseID           uuid.UUID `json:"id" db:"use_case_id"`                                      // Primary key
	Title               string    `json:"title" db:"title"`                                         // Unique title
	Description         string    `json:"description" db:"description"`                             // Free text description
	BusinessArea        string    `json:"business_area" db:"business_area"`                         // Business area label
	MaturityLevel       string    `json:"maturity_level" db:"maturity_level"`                       // Lifecycle stage label
	ProblemStatement    *string   `json:"problem_statement,omitempty" db:"problem_statement"`       // Problem being solved
	SolutionDescription *string   `json:"solution_description,omitempty" db:"solution_description"` // Proposed solution
	BusinessValue       *string   `json:"business_value,omitempty" db:"business_value"`             // Expected benefit
	TechStack           *string   `json:"tech_stack,omitempty" db:"tech_stack"`                     // Technologies involved
	EffortEstimation    *string   `json:"effort_estimation,omitempty" db:"effort_estimation"`       // Implementation effort
	RiskAssessment      *string   `json:"risk_assessment,omitempty" db:"risk_assessment"`           // Known risks
	Priority            *string   `json:"priority,omitempty" db:"priority"`                         // HIGH, MEDIUM or LOW
	CreatedAt           time.Time `json:"created_at" db:"created_at"`                               // Creation timestamp
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`                               // Last update timestamp
}

// UseCasePatch carries the descriptive fields of a partial update.
// Nil fields are left unchanged.
type UseCasePatch struct {
	Title               *string
	Description         *string
	BusinessArea        *string
	MaturityLevel       *string
	ProblemStatement    *string
	SolutionDescription *string
	BusinessValue       *string
	TechStack           *string
	EffortEstimation    *string
	RiskAssessment      *string
	Priority            *string
}

// Empty reports whether the patch changes nothing.
func (p UseCasePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.BusinessArea == nil &&
		p.MaturityLevel == nil && p.ProblemStatement == nil && p.SolutionDescription == nil &&
		p.BusinessValue == nil && p.TechStack == nil && p.EffortEstimation == nil &&
		p.RiskAssessment == nil && p.Priority == nil
}

// UseCaseSummary is a catalog entry with its evaluations.
type UseCaseSummary struct {
	UseCaseDB
	Evaluations     []EvaluationWithUser `json:"evaluations"`
	EvaluationCount int                  `json:"evaluation_count"`
}

// UseCaseDetail is a single use case with its evaluations and the caller's favorite flag.
type UseCaseDetail struct {
	UseCaseDB
	Evaluations []EvaluationWithUser `json:"evaluations"`
	IsFavorite  bool                 `json:"is_favorite"`
}

// UseCaseRef is the minimal projection of a use case joined to an evaluation.
type UseCaseRef struct {
	UseCaseID    uuid.UUID `json:"id" db:"use_case_id"`
	Title        string    `json:"title" db:"title"`
	BusinessArea string    `json:"business_area" db:"business_area"`
}

// UseCaseWithValues is a use case with the raw values of all of its evaluations.
type UseCaseWithValues struct {
	UseCaseDB
	Values []EvaluationValue
}

// RankedUseCase is a ranking entry.
type RankedUseCase struct {
	UseCaseDB
	TotalScore      int `json:"total_score"`
	EvaluationCount int `json:"evaluation_count"`
}

// MaturityCount is the number of use cases sharing a maturity level.
type MaturityCount struct {
	MaturityLevel string `json:"maturity_level" db:"maturity_level"`
	Count         int    `json:"count" db:"count"`
}

// UseCaseStats holds dashboard counters.
type UseCaseStats struct {
	Total      int             `json:"total"`
	ByMaturity []MaturityCount `json:"by_maturity"`
}
