package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	name := "John"
	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com", Name: &name, PasswordHash: "hash"}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret1","name":"John"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret1", &name).
					Return(user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret1", nil).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Email already registered",
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret1", nil).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          `{invalid json}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "invalid email",
			body:          `{"email":"not-an-email","password":"secret1"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid field: email",
		},
		{
			name:          "short password",
			body:          `{"email":"john@example.com","password":"123"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid field: password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, newRequest(http.MethodPost, "/register", tt.body, "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "john@example.com", resp["email"])
			assert.NotContains(t, resp, "password_hash")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret1").Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name:          "missing password",
			body:          `{"email":"john@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid field: password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, newRequest(http.MethodPost, "/login", tt.body, "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "jwt-token", resp.Token)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	caller := &models.Identity{UserID: uuid.New(), TokenID: "jti"}

	mockSvc.EXPECT().Logout(gomock.Any(), caller).Return(nil)
	rr := httptest.NewRecorder()
	NewLogoutHandler(mockSvc)(rr, newRequest(http.MethodPost, "/logout", "", "", caller))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Logout(gomock.Any(), nil).Return(services.ErrUnauthenticated)
	rr = httptest.NewRecorder()
	NewLogoutHandler(mockSvc)(rr, newRequest(http.MethodPost, "/logout", "", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
