// Package handler는 auth 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
)

// AuthUsecase는 인증 오퍼레이션의 유스케이스를 정의합니다.
// Go 관례에 따라 인터페이스는 소비자(handler)가 정의합니다.
type AuthUsecase interface {
	// Signup은 지정된 이메일과 비밀번호로 신규 사용자를 등록합니다.
	Signup(ctx context.Context, email, password string) error
	// Login은 사용자를 인증하고 성공 시 JWT 토큰을 반환합니다.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler는 인증 오퍼레이션의 HTTP 요청을 처리합니다.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler는 AuthHandler의 새 인스턴스를 생성합니다.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup은 회원가입 API 엔드포인트를 처리합니다.
// - 바인딩/검증 실패 시 400
// - 생성 실패(이메일 중복 등) 시 409
// - 성공 시 201
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), string(req.Email), req.Password); err != nil {
		// 사용자 열거 공격 방지를 위해 실제 에러를 노출하지 않음
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login은 로그인 API 엔드포인트를 처리합니다.
// - 바인딩/검증 실패 시 400
// - 인증 실패 시 401
// - 성공 시 JWT 토큰과 함께 200
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
