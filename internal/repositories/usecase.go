package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

const useCaseColumns = `
	use_case_id, title, description, business_area, maturity_level,
	problem_statement, solution_description, business_value, tech_stack,
	effort_estimation, risk_assessment, priority, created_at, updated_at
`

// UseCaseReadRepository handles use case read operations
type UseCaseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUseCaseReadRepository(db *sqlx.DB, txGetter TxGetter) *UseCaseReadRepository {
	return &UseCaseReadRepository{db: db, txGetter: txGetter}
}

// List returns all use cases, newest first.
func (r *UseCaseReadRepository) List(ctx context.Context) ([]models.UseCaseDB, error) {
	query := `SELECT ` + useCaseColumns + `
		FROM use_cases
		ORDER BY created_at DESC, use_case_id DESC
	`

	useCases := []models.UseCaseDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &useCases, query)

	logQuery(query, nil, len(useCases), err)

	return useCases, err
}

// ListOldestFirst returns all use cases in creation order.
func (r *UseCaseReadRepository) ListOldestFirst(ctx context.Context) ([]models.UseCaseDB, error) {
	query := `SELECT ` + useCaseColumns + `
		FROM use_cases
		ORDER BY created_at ASC, use_case_id ASC
	`

	useCases := []models.UseCaseDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &useCases, query)

	logQuery(query, nil, len(useCases), err)

	return useCases, err
}

// GetByID returns one use case or sql.ErrNoRows.
func (r *UseCaseReadRepository) GetByID(ctx context.Context, useCaseID uuid.UUID) (*models.UseCaseDB, error) {
	query := `SELECT ` + useCaseColumns + `
		FROM use_cases
		WHERE use_case_id = $1
	`

	var useCase models.UseCaseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &useCase, query, useCaseID)

	logQuery(query, []any{useCaseID}, useCase.Title, err)

	if err != nil {
		return nil, err
	}

	return &useCase, nil
}

// ExistsByTitle reports whether a use case with the given title is stored.
func (r *UseCaseReadRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM use_cases WHERE title = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, title)

	logQuery(query, []any{title}, exists, err)

	return exists, err
}

// Stats returns the total count and the count per maturity level.
func (r *UseCaseReadRepository) Stats(ctx context.Context) (*models.UseCaseStats, error) {
	const query = `
		SELECT maturity_level, COUNT(*) AS count
		FROM use_cases
		GROUP BY maturity_level
		ORDER BY count DESC, maturity_level ASC
	`

	counts := []models.MaturityCount{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &counts, query)

	logQuery(query, nil, counts, err)

	if err != nil {
		return nil, err
	}

	stats := &models.UseCaseStats{ByMaturity: counts}
	for _, c := range counts {
		stats.Total += c.Count
	}

	return stats, nil
}

// UseCaseWriteRepository handles use case write operations
type UseCaseWriteRepository struct {
	db *sqlx.DB
}

func NewUseCaseWriteRepository(db *sqlx.DB) *UseCaseWriteRepository {
	return &UseCaseWriteRepository{db: db}
}

// Create inserts a use case. A taken title yields ErrConflict.
func (r *UseCaseWriteRepository) Create(ctx context.Context, uc models.UseCaseDB) (*models.UseCaseDB, error) {
	query := `
		INSERT INTO use_cases (
			use_case_id, title, description, business_area, maturity_level,
			problem_statement, solution_description, business_value, tech_stack,
			effort_estimation, risk_assessment, priority, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + useCaseColumns

	if uc.UseCaseID == uuid.Nil {
		uc.UseCaseID = uuid.New()
	}
	args := []any{
		uc.UseCaseID, uc.Title, uc.Description, uc.BusinessArea, uc.MaturityLevel,
		uc.ProblemStatement, uc.SolutionDescription, uc.BusinessValue, uc.TechStack,
		uc.EffortEstimation, uc.RiskAssessment, uc.Priority,
	}

	var created models.UseCaseDB
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.UseCaseID, err)

	if err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

// Update applies the non-nil fields of patch. Unknown ids yield sql.ErrNoRows,
// a taken title yields ErrConflict.
func (r *UseCaseWriteRepository) Update(ctx context.Context, useCaseID uuid.UUID, patch models.UseCasePatch) (*models.UseCaseDB, error) {
	query := `
		UPDATE use_cases SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			business_area = COALESCE($4, business_area),
			maturity_level = COALESCE($5, maturity_level),
			problem_statement = COALESCE($6, problem_statement),
			solution_description = COALESCE($7, solution_description),
			business_value = COALESCE($8, business_value),
			tech_stack = COALESCE($9, tech_stack),
			effort_estimation = COALESCE($10, effort_estimation),
			risk_assessment = COALESCE($11, risk_assessment),
			priority = COALESCE($12, priority),
			updated_at = NOW()
		WHERE use_case_id = $1
		RETURNING ` + useCaseColumns

	args := []any{
		useCaseID, patch.Title, patch.Description, patch.BusinessArea, patch.MaturityLevel,
		patch.ProblemStatement, patch.SolutionDescription, patch.BusinessValue, patch.TechStack,
		patch.EffortEstimation, patch.RiskAssessment, patch.Priority,
	}

	var updated models.UseCaseDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logQuery(query, args, updated.UpdatedAt, err)

	if err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}
