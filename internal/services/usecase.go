package services

//go:generate mockgen -source=usecase.go -destination=usecase_mock.go -package=services

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
	// ErrUseCaseNotFound is returned when a use case id does not resolve.
	ErrUseCaseNotFound = errors.New("use case not found")
	// ErrUseCaseAlreadyExists is returned when a title is already taken.
	ErrUseCaseAlreadyExists = errors.New("use case title already exists")
)

// UseCaseReader defines methods for reading use cases.
type UseCaseReader interface {
	List(ctx context.Context) ([]models.UseCaseDB, error)
	ListOldestFirst(ctx context.Context) ([]models.UseCaseDB, error)
	GetByID(ctx context.Context, useCaseID uuid.UUID) (*models.UseCaseDB, error)
	Stats(ctx context.Context) (*models.UseCaseStats, error)
}

// UseCaseWriter defines methods for writing use cases.
type UseCaseWriter interface {
	Create(ctx context.Context, uc models.UseCaseDB) (*models.UseCaseDB, error)
	Update(ctx context.Context, useCaseID uuid.UUID, patch models.UseCasePatch) (*models.UseCaseDB, error)
}

// EvaluationLister lists evaluations with their evaluators.
type EvaluationLister interface {
	ListWithUsers(ctx context.Context, useCaseID *uuid.UUID) ([]models.EvaluationWithUser, error)
}

// FavoriteChecker checks favorite membership.
type FavoriteChecker interface {
	Exists(ctx context.Context, userID, useCaseID uuid.UUID) (bool, error)
}

// UseCaseService serves the catalog, the ranking and use case administration.
type UseCaseService struct {
	reader      UseCaseReader
	writer      UseCaseWriter
	evaluations EvaluationLister
	favorites   FavoriteChecker
}

// NewUseCaseService creates a new UseCaseService.
func NewUseCaseService(reader UseCaseReader, writer UseCaseWriter, evaluations EvaluationLister, favorites FavoriteChecker) *UseCaseService {
	return &UseCaseService{
		reader:      reader,
		writer:      writer,
		evaluations: evaluations,
		favorites:   favorites,
	}
}

// groupByUseCase indexes evaluations by use case id.
func groupByUseCase(evaluations []models.EvaluationWithUser) map[uuid.UUID][]models.EvaluationWithUser {
	grouped := make(map[uuid.UUID][]models.EvaluationWithUser)
	for _, e := range evaluations {
		grouped[e.UseCaseID] = append(grouped[e.UseCaseID], e)
	}
	return grouped
}

// List returns every use case with its evaluations, newest first.
// Both reads share one snapshot when ctx carries a read transaction.
func (s *UseCaseService) List(ctx context.Context) ([]models.UseCaseSummary, error) {
	useCases, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list use cases", "error", err)
		return nil, err
	}

	evaluations, err := s.evaluations.ListWithUsers(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to list evaluations", "error", err)
		return nil, err
	}
	grouped := groupByUseCase(evaluations)

	summaries := make([]models.UseCaseSummary, 0, len(useCases))
	for _, uc := range useCases {
		evs := grouped[uc.UseCaseID]
		if evs == nil {
			evs = []models.EvaluationWithUser{}
		}
		summaries = append(summaries, models.UseCaseSummary{
			UseCaseDB:       uc,
			Evaluations:     evs,
			EvaluationCount: len(evs),
		})
	}

	return summaries, nil
}

// Get returns one use case with its evaluations. An unknown id yields nil
// without an error. IsFavorite is computed only for an authenticated caller.
func (s *UseCaseService) Get(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID) (*models.UseCaseDetail, error) {
	uc, err := s.reader.GetByID(ctx, useCaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("failed to get use case", "useCaseID", useCaseID, "error", err)
		return nil, err
	}

	evaluations, err := s.evaluations.ListWithUsers(ctx, &useCaseID)
	if err != nil {
		logger.Log.Errorw("failed to list use case evaluations", "useCaseID", useCaseID, "error", err)
		return nil, err
	}

	if evaluations == nil {
		evaluations = []models.EvaluationWithUser{}
	}

	detail := &models.UseCaseDetail{
		UseCaseDB:   *uc,
		Evaluations: evaluations,
	}

	if caller != nil {
		detail.IsFavorite, err = s.favorites.Exists(ctx, caller.UserID, useCaseID)
		if err != nil {
			logger.Log.Errorw("failed to check favorite", "userID", caller.UserID, "useCaseID", useCaseID, "error", err)
			return nil, err
		}
	}

	return detail, nil
}

// Top returns the ranking of use cases by weighted evaluation score.
// Only admins may see it.
func (s *UseCaseService) Top(ctx context.Context, caller *models.Identity) ([]models.RankedUseCase, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	useCases, err := s.reader.ListOldestFirst(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list use cases for ranking", "error", err)
		return nil, err
	}

	evaluations, err := s.evaluations.ListWithUsers(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to list evaluations for ranking", "error", err)
		return nil, err
	}
	grouped := groupByUseCase(evaluations)

	withValues := make([]models.UseCaseWithValues, 0, len(useCases))
	for _, uc := range useCases {
		evs := grouped[uc.UseCaseID]
		values := make([]models.EvaluationValue, 0, len(evs))
		for _, e := range evs {
			values = append(values, e.Value)
		}
		withValues = append(withValues, models.UseCaseWithValues{UseCaseDB: uc, Values: values})
	}

	return RankUseCases(withValues, TopUseCasesLimit), nil
}

// Stats returns dashboard counters.
func (s *UseCaseService) Stats(ctx context.Context) (*models.UseCaseStats, error) {
	stats, err := s.reader.Stats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get use case stats", "error", err)
		return nil, err
	}
	return stats, nil
}

// Create adds a use case to the catalog. Only admins may create.
func (s *UseCaseService) Create(ctx context.Context, caller *models.Identity, uc models.UseCaseDB) (*models.UseCaseDB, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	created, err := s.writer.Create(ctx, uc)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUseCaseAlreadyExists
		}
		logger.Log.Errorw("failed to create use case", "title", uc.Title, "error", err)
		return nil, err
	}

	return created, nil
}

// Update changes the descriptive fields of a use case. Only admins may update.
func (s *UseCaseService) Update(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID, patch models.UseCasePatch) (*models.UseCaseDB, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	updated, err := s.writer.Update(ctx, useCaseID, patch)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUseCaseNotFound
		case errors.Is(err, repositories.ErrConflict):
			return nil, ErrUseCaseAlreadyExists
		}
		logger.Log.Errorw("failed to update use case", "useCaseID", useCaseID, "error", err)
		return nil, err
	}

	return updated, nil
}
