package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEvaluationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.Identity{UserID: uuid.New()}
	useCaseID := uuid.New()
	fkErr := fmt.Errorf("insert evaluation: %w", &pgconn.PgError{Code: "23503"})

	tests := []struct {
		name         string
		id           string
		caller       *models.Identity
		body         string
		mockSetup    func(m *MockEvaluationSubmitter)
		expectedCode int
	}{
		{
			name:   "success",
			id:     useCaseID.String(),
			caller: caller,
			body:   `{"value":"HIGH"}`,
			mockSetup: func(m *MockEvaluationSubmitter) {
				m.EXPECT().Submit(gomock.Any(), caller, useCaseID, models.EvaluationHigh).
					Return(&models.EvaluationDB{EvaluationID: uuid.New(), UseCaseID: useCaseID, UserID: caller.UserID, Value: models.EvaluationHigh}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "anonymous",
			id:     useCaseID.String(),
			body:   `{"value":"HIGH"}`,
			mockSetup: func(m *MockEvaluationSubmitter) {
				m.EXPECT().Submit(gomock.Any(), nil, useCaseID, models.EvaluationHigh).Return(nil, services.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "unknown use case",
			id:     useCaseID.String(),
			caller: caller,
			body:   `{"value":"LOW"}`,
			mockSetup: func(m *MockEvaluationSubmitter) {
				m.EXPECT().Submit(gomock.Any(), caller, useCaseID, models.EvaluationLow).Return(nil, fkErr)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid value",
			id:           useCaseID.String(),
			caller:       caller,
			body:         `{"value":"SUPER"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed id",
			id:           "nope",
			caller:       caller,
			body:         `{"value":"HIGH"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEvaluationSubmitter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewSubmitEvaluationHandler(mockSvc)(rr, newRequest(http.MethodPut, "/usecases/"+tt.id+"/evaluation", tt.body, tt.id, tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteEvaluationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.Identity{UserID: uuid.New()}
	id := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "deleted", expectedCode: http.StatusNoContent},
		{name: "not found", err: services.ErrEvaluationNotFound, expectedCode: http.StatusNotFound},
		{name: "not owner", err: services.ErrForbidden, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEvaluationDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), caller, id).Return(tt.err)

			rr := httptest.NewRecorder()
			NewDeleteEvaluationHandler(mockSvc)(rr, newRequest(http.MethodDelete, "/evaluations/"+id.String(), "", id.String(), caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMyEvaluationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.Identity{UserID: uuid.New()}
	mockSvc := NewMockMyEvaluationsLister(ctrl)

	mockSvc.EXPECT().ListMine(gomock.Any(), caller).Return(nil, nil)
	rr := httptest.NewRecorder()
	NewMyEvaluationsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/me/evaluations", "", "", caller))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	evaluations := []models.EvaluationWithUseCase{{
		EvaluationID: uuid.New(),
		Value:        models.EvaluationMedium,
		UseCase:      models.UseCaseRef{UseCaseID: uuid.New(), Title: "A", BusinessArea: "Finance"},
	}}
	mockSvc.EXPECT().ListMine(gomock.Any(), caller).Return(evaluations, nil)
	rr = httptest.NewRecorder()
	NewMyEvaluationsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/me/evaluations", "", "", caller))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.EvaluationWithUseCase
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "A", resp[0].UseCase.Title)

	mockSvc.EXPECT().ListMine(gomock.Any(), nil).Return(nil, services.ErrUnauthenticated)
	rr = httptest.NewRecorder()
	NewMyEvaluationsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/me/evaluations", "", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
