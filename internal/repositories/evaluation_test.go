package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var evaluationRowColumns = []string{"evaluation_id", "use_case_id", "user_id", "value", "created_at", "updated_at"}

func TestEvaluationWriteRepository_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEvaluationWriteRepository(db, nil)
	ctx := context.Background()
	useCaseID, userID := uuid.New(), uuid.New()

	t.Run("Upsert", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (use_case_id, user_id) DO UPDATE SET value = EXCLUDED.value`)).
			WithArgs(sqlmock.AnyArg(), useCaseID, userID, "HIGH").
			WillReturnRows(sqlmock.NewRows(evaluationRowColumns).
				AddRow(id.String(), useCaseID.String(), userID.String(), "HIGH", now, now))

		evaluation, err := repo.Upsert(ctx, useCaseID, userID, models.EvaluationHigh)
		require.NoError(t, err)
		assert.Equal(t, id, evaluation.EvaluationID)
		assert.Equal(t, models.EvaluationHigh, evaluation.Value)
	})

	t.Run("Upsert unique violation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO evaluations`)).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := repo.Upsert(ctx, useCaseID, userID, models.EvaluationLow)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Upsert foreign key violation passes through", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO evaluations`)).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err := repo.Upsert(ctx, useCaseID, userID, models.EvaluationLow)
		assert.True(t, IsForeignKeyViolation(err))
		assert.NotErrorIs(t, err, ErrConflict)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE evaluations SET value = $3`)).
			WithArgs(useCaseID, userID, "MEDIUM").
			WillReturnRows(sqlmock.NewRows(evaluationRowColumns).
				AddRow(id.String(), useCaseID.String(), userID.String(), "MEDIUM", now, now))

		evaluation, err := repo.UpdateValue(ctx, useCaseID, userID, models.EvaluationMedium)
		require.NoError(t, err)
		assert.Equal(t, models.EvaluationMedium, evaluation.Value)
	})

	t.Run("Delete", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM evaluations WHERE evaluation_id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("Delete missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM evaluations`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositories_UseRequestTx(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	txGetter := func(context.Context) *sqlx.Tx { return tx }

	reader := NewEvaluationReadRepository(db, txGetter)
	writer := NewEvaluationWriteRepository(db, txGetter)

	id, useCaseID, userID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM evaluations WHERE evaluation_id = $1 FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(evaluationRowColumns).
			AddRow(id.String(), useCaseID.String(), userID.String(), "LOW", now, now))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM evaluations`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	evaluation, err := reader.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, userID, evaluation.UserID)
	require.NoError(t, writer.Delete(ctx, id))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationReadRepository_ListByUser_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEvaluationReadRepository(db, nil)
	ctx := context.Background()

	userID, useCaseID := uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.user_id = $1 ORDER BY e.created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{
			"evaluation_id", "value", "created_at", "updated_at",
			"use_case.use_case_id", "use_case.title", "use_case.business_area",
		}).AddRow(uuid.NewString(), "HIGH", now, now, useCaseID.String(), "Chatbot", "Support"))

	evaluations, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, useCaseID, evaluations[0].UseCase.UseCaseID)
	assert.Equal(t, "Chatbot", evaluations[0].UseCase.Title)
	assert.Equal(t, "Support", evaluations[0].UseCase.BusinessArea)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reader := NewEvaluationReadRepository(db, nil)
	writer := NewEvaluationWriteRepository(db, nil)

	alice := insertUser(t, db, "alice@example.com")
	bob := insertUser(t, db, "bob@example.com")
	useCase := insertUseCase(t, db, "Chatbot", time.Now())

	t.Run("Repeated upserts keep one row with the last value", func(t *testing.T) {
		first, err := writer.Upsert(ctx, useCase, alice, models.EvaluationLow)
		require.NoError(t, err)

		var last *models.EvaluationDB
		for _, v := range []models.EvaluationValue{models.EvaluationMedium, models.EvaluationHigh, models.EvaluationMedium} {
			last, err = writer.Upsert(ctx, useCase, alice, v)
			require.NoError(t, err)
		}

		assert.Equal(t, first.EvaluationID, last.EvaluationID)
		assert.Equal(t, models.EvaluationMedium, last.Value)

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM evaluations WHERE use_case_id = $1 AND user_id = $2`, useCase, alice))
		assert.Equal(t, 1, count)
	})

	t.Run("Unknown use case is a foreign key violation", func(t *testing.T) {
		_, err := writer.Upsert(ctx, uuid.New(), alice, models.EvaluationHigh)
		assert.True(t, IsForeignKeyViolation(err))
	})

	t.Run("ListByUser returns only own evaluations", func(t *testing.T) {
		_, err := writer.Upsert(ctx, useCase, bob, models.EvaluationHigh)
		require.NoError(t, err)

		evaluations, err := reader.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, evaluations, 1)
		assert.Equal(t, "Chatbot", evaluations[0].UseCase.Title)
	})

	t.Run("ListWithUsers", func(t *testing.T) {
		evaluations, err := reader.ListWithUsers(ctx, &useCase)
		require.NoError(t, err)
		require.Len(t, evaluations, 2)
		assert.Equal(t, "alice@example.com", evaluations[0].UserEmail)

		all, err := reader.ListWithUsers(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		none, err := reader.ListWithUsers(ctx, &bob)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		evaluations, err := reader.ListByUser(ctx, bob)
		require.NoError(t, err)
		require.Len(t, evaluations, 1)

		require.NoError(t, writer.Delete(ctx, evaluations[0].EvaluationID))

		_, err = reader.GetByID(ctx, evaluations[0].EvaluationID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.ErrorIs(t, writer.Delete(ctx, evaluations[0].EvaluationID), sql.ErrNoRows)
	})

	t.Run("Concurrent first submissions keep one row", func(t *testing.T) {
		carol := insertUser(t, db, "carol@example.com")
		target := insertUseCase(t, db, "Concurrent", time.Now())

		values := []models.EvaluationValue{models.EvaluationHigh, models.EvaluationMedium, models.EvaluationLow}
		const writers = 12

		start := make(chan struct{})
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < writers; i++ {
			value := values[i%len(values)]
			g.Go(func() error {
				<-start
				_, err := writer.Upsert(gctx, target, carol, value)
				return err
			})
		}
		close(start)
		require.NoError(t, g.Wait())

		var stored []models.EvaluationValue
		require.NoError(t, db.Select(&stored, `SELECT value FROM evaluations WHERE use_case_id = $1 AND user_id = $2`, target, carol))
		require.Len(t, stored, 1)
		assert.Contains(t, values, stored[0])
	})

	t.Run("UpdateValue without row", func(t *testing.T) {
		_, err := writer.UpdateValue(ctx, useCase, bob, models.EvaluationLow)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
