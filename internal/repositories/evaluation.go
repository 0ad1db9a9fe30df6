package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// EvaluationReadRepository handles evaluation read operations
type EvaluationReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEvaluationReadRepository(db *sqlx.DB, txGetter TxGetter) *EvaluationReadRepository {
	return &EvaluationReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns one evaluation or sql.ErrNoRows.
// Inside a request transaction the row stays locked until commit.
func (r *EvaluationReadRepository) GetByID(ctx context.Context, evaluationID uuid.UUID) (*models.EvaluationDB, error) {
	const query = `
		SELECT evaluation_id, use_case_id, user_id, value, created_at, updated_at
		FROM evaluations
		WHERE evaluation_id = $1
		FOR UPDATE
	`

	var evaluation models.EvaluationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &evaluation, query, evaluationID)

	logQuery(query, []any{evaluationID}, evaluation.UserID, err)

	if err != nil {
		return nil, err
	}

	return &evaluation, nil
}

// ListWithUsers returns evaluations joined with their evaluators, oldest first.
// A nil useCaseID lists the evaluations of every use case.
func (r *EvaluationReadRepository) ListWithUsers(ctx context.Context, useCaseID *uuid.UUID) ([]models.EvaluationWithUser, error) {
	const query = `
		SELECT e.evaluation_id, e.use_case_id, e.value, e.created_at,
		       u.user_id, u.email, u.name
		FROM evaluations e
		JOIN users u ON u.user_id = e.user_id
		WHERE ($1::UUID IS NULL OR e.use_case_id = $1)
		ORDER BY e.created_at ASC, e.evaluation_id ASC
	`

	evaluations := []models.EvaluationWithUser{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &evaluations, query, useCaseID)

	logQuery(query, []any{useCaseID}, len(evaluations), err)

	return evaluations, err
}

// ListByUser returns the evaluations of one user joined with their use cases, newest first.
func (r *EvaluationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.EvaluationWithUseCase, error) {
	const query = `
		SELECT e.evaluation_id, e.value, e.created_at, e.updated_at,
		       uc.use_case_id AS "use_case.use_case_id",
		       uc.title AS "use_case.title",
		       uc.business_area AS "use_case.business_area"
		FROM evaluations e
		JOIN use_cases uc ON uc.use_case_id = e.use_case_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC, e.evaluation_id DESC
	`

	evaluations := []models.EvaluationWithUseCase{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &evaluations, query, userID)

	logQuery(query, []any{userID}, len(evaluations), err)

	return evaluations, err
}

// EvaluationWriteRepository handles evaluation write operations
type EvaluationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEvaluationWriteRepository(db *sqlx.DB, txGetter TxGetter) *EvaluationWriteRepository {
	return &EvaluationWriteRepository{db: db, txGetter: txGetter}
}

// Upsert writes the single evaluation of (useCaseID, userID) in one statement.
// An existing row keeps its id and gets the new value.
func (r *EvaluationWriteRepository) Upsert(ctx context.Context, useCaseID, userID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error) {
	const query = `
		INSERT INTO evaluations (evaluation_id, use_case_id, user_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (use_case_id, user_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING evaluation_id, use_case_id, user_id, value, created_at, updated_at
	`
	args := []any{uuid.New(), useCaseID, userID, value}

	var evaluation models.EvaluationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &evaluation, query, args...)

	logQuery(query, args, evaluation.EvaluationID, err)

	if err != nil {
		return nil, mapError(err)
	}

	return &evaluation, nil
}

// UpdateValue overwrites the value of the existing evaluation of (useCaseID, userID).
// Returns sql.ErrNoRows when there is none.
func (r *EvaluationWriteRepository) UpdateValue(ctx context.Context, useCaseID, userID uuid.UUID, value models.EvaluationValue) (*models.EvaluationDB, error) {
	const query = `
		UPDATE evaluations
		SET value = $3, updated_at = NOW()
		WHERE use_case_id = $1 AND user_id = $2
		RETURNING evaluation_id, use_case_id, user_id, value, created_at, updated_at
	`
	args := []any{useCaseID, userID, value}

	var evaluation models.EvaluationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &evaluation, query, args...)

	logQuery(query, args, evaluation.EvaluationID, err)

	if err != nil {
		return nil, err
	}

	return &evaluation, nil
}

// Delete removes one evaluation. Returns sql.ErrNoRows when nothing was deleted.
func (r *EvaluationWriteRepository) Delete(ctx context.Context, evaluationID uuid.UUID) error {
	const query = `DELETE FROM evaluations WHERE evaluation_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, evaluationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{evaluationID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
