package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/service/authservice"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
	"github.com/GlebRadaev/bonusledger/pkg/validate"
)

const phone = "+79991234567"

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, validate.New())
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), phone, "password123").Return(&domain.User{ID: 1, Phone: phone}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Phone already registered",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), phone, "password123").Return(nil, domain.ErrPhoneTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrPhoneTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{"phone":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Phone not in E.164",
			body:          `{"phone":"89991234567","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "phone must be a phone number in E.164 format",
		},
		{
			name:          "Short password",
			body:          `{"phone":"+79991234567","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password must satisfy min=8",
		},
		{
			name: "Storage failure",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), phone, "password123").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Token generation failure",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), phone, "password123").Return(&domain.User{ID: 1, Phone: phone}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), phone, "password123").Return(&domain.User{ID: 3, Phone: phone}, nil)
				service.EXPECT().GenerateToken(3).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"phone":"+79991234567","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), phone, "wrongpassword").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Storage failure",
			body: `{"phone":"+79991234567","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), phone, "password123").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Missing password",
			body:          `{"phone":"+79991234567"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
