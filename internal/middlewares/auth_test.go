package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/jwt"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "token-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:  userID,
		Email:   "alice@example.com",
		IsAdmin: true,
	}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, rev *MockRevocationChecker)
		expectedStatus   int
		expectNextCalled bool
		expectIdentity   bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoToken)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "MalformedHeader",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("invalid authorization header format"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "RevokedToken",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("revoked", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "revoked").Return(claims, nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "token-1").Return(true, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "RevocationStoreDown",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "token-1").Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "token-1").Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectIdentity:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockRevocations := NewMockRevocationChecker(ctrl)
			tt.mockSetup(mockTokener, mockRevocations)

			nextCalled := false
			var identity *models.Identity
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				identity = GetIdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := IdentifyMiddleware(mockTokener, mockRevocations)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectIdentity {
				if assert.NotNil(t, identity) {
					assert.Equal(t, userID, identity.UserID)
					assert.Equal(t, "alice@example.com", identity.Email)
					assert.True(t, identity.IsAdmin)
					assert.Equal(t, "token-1", identity.TokenID)
				}
			} else {
				assert.Nil(t, identity)
			}
			if rr.Code != http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"error"`)
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuthMiddleware(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetIdentityToContext(req.Context(), &models.Identity{UserID: uuid.New()}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
