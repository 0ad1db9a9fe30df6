package services

//go:generate mockgen -source=evaluation.go -destination=evaluation_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/repositories"
)

var (
	// ErrEvaluationNotFound is returned when an evaluation id does not resolve.
	ErrEvaluationNotFound = errors.New("evaluation not found")
	// ErrInvalidEvaluationValue is returned for values other than HIGH, MEDIUM or LOW.
	ErrInvalidEvaluationValue = errors.New("evaluation value must be HIGH, MEDIUM or LOW")
)

// EvaluationReader defines methods for reading evaluations.
type EvaluationReader interface {
	GetByID(ctx context.Context, evaluationID uuid.UUID) (*models.EvaluationDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.EvaluationWithUseCase, error)
}

// EvaluationWriter defines methods for writing evaluations.
type EvaluationWriter interface {
	Upsert(ctx context.Context, useCaseID, userID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error)
	UpdateValue(ctx context.Context, useCaseID, userID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error)
	Delete(ctx context.Context, evaluationID uuid.UUID) error
}

// EvaluationService handles evaluation submission, deletion and history.
type EvaluationService struct {
	reader   EvaluationReader
	writer   EvaluationWriter
	activity ActivityRecorder
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(reader EvaluationReader, writer EvaluationWriter, activity ActivityRecorder) *EvaluationService {
	return &EvaluationService{
		reader:   reader,
		writer:   writer,
		activity: activity,
	}
}

// Submit stores the caller's evaluation of a use case, replacing any earlier one.
// A reference to an unknown use case surfaces as the store's foreign key error.
func (s *EvaluationService) Submit(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if !value.Valid() {
		return nil, ErrInvalidEvaluationValue
	}

	evaluation, err := s.writer.Upsert(ctx, useCaseID, caller.UserID, value)
	if errors.Is(err, repositories.ErrConflict) {
		// a concurrent first submission won the insert, overwrite it
		logger.Log.Warnw("evaluation upsert conflict, retrying as update", "userID", caller.UserID, "useCaseID", useCaseID)
		evaluation, err = s.writer.UpdateValue(ctx, useCaseID, caller.UserID, value)
	}
	if err != nil {
		logger.Log.Errorw("failed to submit evaluation", "userID", caller.UserID, "useCaseID", useCaseID, "value", value, "error", err)
		return nil, err
	}

	s.activity.Record(ctx, caller.UserID, models.ActivityEvaluationSubmitted, useCaseID, string(value))

	return evaluation, nil
}

// Delete removes one of the caller's own evaluations.
func (s *EvaluationService) Delete(ctx context.Context, caller *models.Identity, evaluationID uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	evaluation, err := s.reader.GetByID(ctx, evaluationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEvaluationNotFound
		}
		logger.Log.Errorw("failed to get evaluation", "evaluationID", evaluationID, "error", err)
		return err
	}

	if evaluation.UserID != caller.UserID {
		logger.Log.Warnw("evaluation owned by another user", "evaluationID", evaluationID, "userID", caller.UserID)
		return ErrForbidden
	}

	if err := s.writer.Delete(ctx, evaluationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEvaluationNotFound
		}
		logger.Log.Errorw("failed to delete evaluation", "evaluationID", evaluationID, "error", err)
		return err
	}

	s.activity.Record(ctx, caller.UserID, models.ActivityEvaluationDeleted, evaluation.UseCaseID, string(evaluation.Value))

	return nil
}

// ListMine returns the caller's evaluations with their use cases, newest first.
func (s *EvaluationService) ListMine(ctx context.Context, caller *models.Identity) ([]models.EvaluationWithUseCase, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	evaluations, err := s.reader.ListByUser(ctx, caller.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list user evaluations", "userID", caller.UserID, "error", err)
		return nil, err
	}

	return evaluations, nil
}
