package services

import (
	"errors"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// Access errors shared by every service.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

func requireCaller(caller *models.Identity) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	return nil
}

// requireAdmin allows only callers carrying the admin capability.
func requireAdmin(caller *models.Identity) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if !caller.IsAdmin {
		return ErrForbidden
	}
	return nil
}
