package models

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationValue is the three-level qualitative rating of a use case.
type EvaluationValue string

// Supported evaluation values
const (
	EvaluationHigh   EvaluationValue = "HIGH"
	EvaluationMedium EvaluationValue = "MEDIUM"
	EvaluationLow    EvaluationValue = "LOW"
)

// Valid reports whether v is one of HIGH, MEDIUM or LOW.
func (v EvaluationValue) Valid() bool {
	switch v {
	case EvaluationHigh, EvaluationMedium, EvaluationLow:
		return true
	}
	return false
}

// Weight returns the ranking weight of v: HIGH=3, MEDIUM=2, LOW=1.
// Unknown values weigh nothing.
func (v EvaluationValue) Weight() int {
	switch v {
	case EvaluationHigh:
		return 3
	case EvaluationMedium:
		return 2
	case EvaluationLow:
		return 1
	}
	return 0
}

// EvaluationDB represents an evaluation row in the database
type EvaluationDB struct {
	EvaluationID uuid.UUID       `json:"id" db:"evaluation_id"`
	UseCaseID    uuid.UUID       `json:"use_case_id" db:"use_case_id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	Value        EvaluationValue `json:"value" db:"value"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// EvaluationWithUser is an evaluation joined with its evaluator.
type EvaluationWithUser struct {
	EvaluationID uuid.UUID       `json:"id" db:"evaluation_id"`
	UseCaseID    uuid.UUID       `json:"use_case_id" db:"use_case_id"`
	Value        EvaluationValue `json:"value" db:"value"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	UserEmail    string          `json:"user_email" db:"email"`
	UserName     *string         `json:"user_name,omitempty" db:"name"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// EvaluationWithUseCase is an evaluation joined with a minimal projection of its use case.
type EvaluationWithUseCase struct {
	EvaluationID uuid.UUID       `json:"id" db:"evaluation_id"`
	Value        EvaluationValue `json:"value" db:"value"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
	UseCase      UseCaseRef      `json:"use_case" db:"use_case"`
}
