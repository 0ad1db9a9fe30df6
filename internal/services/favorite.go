package services

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// UserGetter loads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// FavoriteReader checks favorite membership.
type FavoriteReader interface {
	Exists(ctx context.Context, userID, useCaseID uuid.UUID) (bool, error)
}

// FavoriteWriter changes favorite membership.
type FavoriteWriter interface {
	Add(ctx context.Context, userID, useCaseID uuid.UUID) error
	Remove(ctx context.Context, userID, useCaseID uuid.UUID) error
}

// FavoriteService toggles favorites.
type FavoriteService struct {
	users    UserGetter
	reader   FavoriteReader
	writer   FavoriteWriter
	activity ActivityRecorder
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(users UserGetter, reader FavoriteReader, writer FavoriteWriter, activity ActivityRecorder) *FavoriteService {
	return &FavoriteService{
		users:    users,
		reader:   reader,
		writer:   writer,
		activity: activity,
	}
}

// Toggle flips the membership of useCaseID in the caller's favorites and
// reports whether it is a favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, caller *models.Identity, useCaseID uuid.UUID) (bool, error) {
	if err := requireCaller(caller); err != nil {
		return false, err
	}

	if _, err := s.users.GetByID(ctx, caller.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "userID", caller.UserID, "error", err)
		return false, err
	}

	exists, err := s.reader.Exists(ctx, caller.UserID, useCaseID)
	if err != nil {
		logger.Log.Errorw("failed to check favorite", "userID", caller.UserID, "useCaseID", useCaseID, "error", err)
		return false, err
	}

	if exists {
		err = s.writer.Remove(ctx, caller.UserID, useCaseID)
	} else {
		err = s.writer.Add(ctx, caller.UserID, useCaseID)
	}
	if err != nil {
		logger.Log.Errorw("failed to toggle favorite", "userID", caller.UserID, "useCaseID", useCaseID, "error", err)
		return false, err
	}

	isFavorite := !exists
	s.activity.Record(ctx, caller.UserID, models.ActivityFavoriteToggled, useCaseID, strconv.FormatBool(isFavorite))

	return isFavorite, nil
}
