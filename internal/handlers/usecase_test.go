package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUseCasesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUseCaseLister(ctrl)
	summaries := []models.UseCaseSummary{{
		UseCaseDB:   models.UseCaseDB{UseCaseID: uuid.New(), Title: "A"},
		Evaluations: []models.EvaluationWithUser{},
	}}
	mockSvc.EXPECT().List(gomock.Any()).Return(summaries, nil)

	rr := httptest.NewRecorder()
	NewListUseCasesHandler(mockSvc)(rr, newRequest(http.MethodGet, "/usecases", "", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "A", resp[0]["title"])
	assert.Equal(t, []any{}, resp[0]["evaluations"])
	assert.EqualValues(t, 0, resp[0]["evaluation_count"])

	mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	NewListUseCasesHandler(mockSvc)(rr, newRequest(http.MethodGet, "/usecases", "", "", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetUseCaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	caller := &models.Identity{UserID: uuid.New()}

	tests := []struct {
		name         string
		id           string
		caller       *models.Identity
		mockSetup    func(m *MockUseCaseGetter)
		expectedCode int
	}{
		{
			name:   "found for anonymous",
			id:     id.String(),
			caller: nil,
			mockSetup: func(m *MockUseCaseGetter) {
				m.EXPECT().Get(gomock.Any(), nil, id).
					Return(&models.UseCaseDetail{UseCaseDB: models.UseCaseDB{UseCaseID: id}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "found for caller",
			id:     id.String(),
			caller: caller,
			mockSetup: func(m *MockUseCaseGetter) {
				m.EXPECT().Get(gomock.Any(), caller, id).
					Return(&models.UseCaseDetail{UseCaseDB: models.UseCaseDB{UseCaseID: id}, IsFavorite: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown id",
			id:   id.String(),
			mockSetup: func(m *MockUseCaseGetter) {
				m.EXPECT().Get(gomock.Any(), nil, id).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUseCaseGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewGetUseCaseHandler(mockSvc)(rr, newRequest(http.MethodGet, "/usecases/"+tt.id, "", tt.id, tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var detail models.UseCaseDetail
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
				assert.Equal(t, id, detail.UseCaseID)
				assert.Equal(t, tt.caller != nil, detail.IsFavorite)
			}
		})
	}
}

func TestTopUseCasesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Identity{UserID: uuid.New(), IsAdmin: true}
	user := &models.Identity{UserID: uuid.New()}

	tests := []struct {
		name         string
		caller       *models.Identity
		err          error
		expectedCode int
	}{
		{name: "admin", caller: admin, expectedCode: http.StatusOK},
		{name: "anonymous", caller: nil, err: services.ErrUnauthenticated, expectedCode: http.StatusUnauthorized},
		{name: "non-admin", caller: user, err: services.ErrForbidden, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUseCaseRanker(ctrl)
			var ranked []models.RankedUseCase
			if tt.err == nil {
				ranked = []models.RankedUseCase{{UseCaseDB: models.UseCaseDB{Title: "A"}, TotalScore: 8, EvaluationCount: 4}}
			}
			mockSvc.EXPECT().Top(gomock.Any(), tt.caller).Return(ranked, tt.err)

			rr := httptest.NewRecorder()
			NewTopUseCasesHandler(mockSvc)(rr, newRequest(http.MethodGet, "/usecases/top", "", "", tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.err == nil {
				var resp []models.RankedUseCase
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 8, resp[0].TotalScore)
			}
		})
	}
}

func TestUseCaseStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUseCaseStatsGetter(ctrl)
	mockSvc.EXPECT().Stats(gomock.Any()).
		Return(&models.UseCaseStats{Total: 2, ByMaturity: []models.MaturityCount{{MaturityLevel: "Draft", Count: 2}}}, nil)

	rr := httptest.NewRecorder()
	NewUseCaseStatsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/usecases/stats", "", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total":2,"by_maturity":[{"maturity_level":"Draft","count":2}]}`, rr.Body.String())
}

func TestCreateUseCaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Identity{UserID: uuid.New(), IsAdmin: true}
	priority := "HIGH"

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUseCaseCreator)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"title":"T","description":"D","business_area":"Finance","maturity_level":"Draft","priority":"HIGH"}`,
			mockSetup: func(m *MockUseCaseCreator) {
				m.EXPECT().Create(gomock.Any(), admin, models.UseCaseDB{
					Title: "T", Description: "D", BusinessArea: "Finance", MaturityLevel: "Draft", Priority: &priority,
				}).Return(&models.UseCaseDB{UseCaseID: uuid.New(), Title: "T"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate title",
			body: `{"title":"T","description":"D","business_area":"Finance","maturity_level":"Draft"}`,
			mockSetup: func(m *MockUseCaseCreator) {
				m.EXPECT().Create(gomock.Any(), admin, gomock.Any()).Return(nil, services.ErrUseCaseAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid priority",
			body:         `{"title":"T","description":"D","business_area":"Finance","maturity_level":"Draft","priority":"URGENT"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing title",
			body:         `{"description":"D","business_area":"Finance","maturity_level":"Draft"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "title longer than column",
			body:         `{"title":"` + strings.Repeat("a", models.MaxTitleLength+1) + `","description":"D","business_area":"Finance","maturity_level":"Draft"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUseCaseCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewCreateUseCaseHandler(mockSvc)(rr, newRequest(http.MethodPost, "/usecases", tt.body, "", admin))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateUseCaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.Identity{UserID: uuid.New(), IsAdmin: true}
	id := uuid.New()
	title := "Renamed"

	tests := []struct {
		name         string
		caller       *models.Identity
		body         string
		mockSetup    func(m *MockUseCaseUpdater)
		expectedCode int
	}{
		{
			name:   "success",
			caller: admin,
			body:   `{"title":"Renamed"}`,
			mockSetup: func(m *MockUseCaseUpdater) {
				m.EXPECT().Update(gomock.Any(), admin, id, models.UseCasePatch{Title: &title}).
					Return(&models.UseCaseDB{UseCaseID: id, Title: title}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "unknown id",
			caller: admin,
			body:   `{"title":"Renamed"}`,
			mockSetup: func(m *MockUseCaseUpdater) {
				m.EXPECT().Update(gomock.Any(), admin, id, gomock.Any()).Return(nil, services.ErrUseCaseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "non-admin",
			caller: &models.Identity{UserID: uuid.New()},
			body:   `{"title":"Renamed"}`,
			mockSetup: func(m *MockUseCaseUpdater) {
				m.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "empty patch",
			caller:       admin,
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty title",
			caller:       admin,
			body:         `{"title":""}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "long imported title",
			caller: admin,
			body:   `{"title":"` + strings.Repeat("ä", models.MaxTitleLength) + `"}`,
			mockSetup: func(m *MockUseCaseUpdater) {
				m.EXPECT().Update(gomock.Any(), admin, id, gomock.Any()).
					Return(&models.UseCaseDB{UseCaseID: id}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "title longer than column",
			caller:       admin,
			body:         `{"title":"` + strings.Repeat("a", models.MaxTitleLength+1) + `"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUseCaseUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewUpdateUseCaseHandler(mockSvc)(rr, newRequest(http.MethodPatch, "/usecases/"+id.String(), tt.body, id.String(), tt.caller))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
