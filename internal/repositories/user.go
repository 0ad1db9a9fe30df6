package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email or sql.ErrNoRows.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, name, password_hash, is_admin, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)

	logQuery(query, []any{email}, user.UserID, err)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id or sql.ErrNoRows.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, name, password_hash, is_admin, created_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)

	logQuery(query, []any{userID}, user.Email, err)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken email yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, email string, name *string, passwordHash string, isAdmin bool) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, email, name, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING user_id, email, name, password_hash, is_admin, created_at
	`
	args := []any{uuid.New(), email, name, passwordHash, isAdmin}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// password hash stays out of the log
	logQuery(query, []any{args[0], email, name, isAdmin}, user.UserID, err)

	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}
