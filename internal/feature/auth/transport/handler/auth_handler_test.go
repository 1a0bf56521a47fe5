package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockAuthUsecase는 AuthUsecase 인터페이스의 목 구현입니다.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "token", nil
}

func setupAuthRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func TestSignupHandler(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		signupFunc func(ctx context.Context, email, password string) error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"email":"user@example.com","password":"password123"}`,
			signupFunc: func(ctx context.Context, email, password string) error { return nil },
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"password":"password123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"email":"dup@example.com","password":"password123"}`,
			signupFunc: func(ctx context.Context, email, password string) error {
				return errors.New("email already exists")
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupAuthRouter(&mockAuthUsecase{SignupFunc: tc.signupFunc})

			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		loginFunc  func(ctx context.Context, email, password string) (string, error)
		wantStatus int
		wantToken  string
	}{
		{
			name: "success returns token",
			body: `{"email":"user@example.com","password":"password123"}`,
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			wantStatus: http.StatusOK,
			wantToken:  "signed-token",
		},
		{
			name: "invalid credentials",
			body: `{"email":"user@example.com","password":"wrong"}`,
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("invalid email or password")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `not-json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupAuthRouter(&mockAuthUsecase{LoginFunc: tc.loginFunc})

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantToken != "" {
				assert.Contains(t, w.Body.String(), tc.wantToken)
			}
		})
	}
}
