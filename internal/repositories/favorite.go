package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FavoriteReadRepository handles favorite membership reads
type FavoriteReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteReadRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db, txGetter: txGetter}
}

// Exists reports whether useCaseID is in the favorites of userID.
func (r *FavoriteReadRepository) Exists(ctx context.Context, userID, useCaseID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND use_case_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, userID, useCaseID)

	logQuery(query, []any{userID, useCaseID}, exists, err)

	return exists, err
}

// FavoriteWriteRepository handles favorite membership writes
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

// Add puts useCaseID into the favorites of userID. Adding twice is a no-op.
func (r *FavoriteWriteRepository) Add(ctx context.Context, userID, useCaseID uuid.UUID) error {
	const query = `
		INSERT INTO favorites (user_id, use_case_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, use_case_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, useCaseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, useCaseID}, rowsAffected, err)

	return err
}

// Remove takes useCaseID out of the favorites of userID.
func (r *FavoriteWriteRepository) Remove(ctx context.Context, userID, useCaseID uuid.UUID) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND use_case_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, useCaseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, useCaseID}, rowsAffected, err)

	return err
}
