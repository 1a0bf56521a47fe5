// Package handler는 settings 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/settings/domain/entity"
	"pocket_backend/internal/feature/settings/usecase"
)

// SettingsUsecase는 설정 조회/갱신 유스케이스를 정의합니다.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, p usecase.Patch) (*entity.Settings, error)
}

// SettingsHandler는 설정의 HTTP 요청을 처리합니다.
type SettingsHandler struct {
	uc SettingsUsecase
}

func NewSettingsHandler(uc SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func toSettingsResponse(s *entity.Settings) api.SettingsResponse {
	return api.SettingsResponse{
		DarkMode:      s.DarkMode,
		DefaultMarket: s.DefaultMarket,
		BudgetGoal:    s.BudgetGoal,
		StartPage:     s.StartPage,
	}
}

// Get은 현재 설정을 반환합니다. 최초 호출 시 기본값이 만들어집니다.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.uc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}

// Update는 요청에 포함된 필드만 갱신합니다.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req api.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	s, err := h.uc.Update(c.Request.Context(), usecase.Patch{
		DarkMode:      req.DarkMode,
		DefaultMarket: req.DefaultMarket,
		BudgetGoal:    req.BudgetGoal,
		StartPage:     req.StartPage,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}
