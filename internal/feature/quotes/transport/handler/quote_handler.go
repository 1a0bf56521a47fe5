// Package handler는 quotes 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	holdingentity "pocket_backend/internal/feature/holdings/domain/entity"
	holdingusecase "pocket_backend/internal/feature/holdings/usecase"
	"pocket_backend/internal/feature/quotes/domain/entity"
	"pocket_backend/internal/feature/quotes/usecase"
)

// QuotesUsecase는 차트 파생과 환율 조회 유스케이스를 정의합니다.
type QuotesUsecase interface {
	GetChart(ctx context.Context, market holdingentity.Market, code, period string) ([]entity.ChartBar, error)
	GetExchangeRate(ctx context.Context) (entity.ExchangeRate, error)
}

// RefreshUsecase는 현재가 일괄 갱신 유스케이스를 정의합니다.
type RefreshUsecase interface {
	Refresh(ctx context.Context) (usecase.RefreshResult, error)
}

// HoldingFinder는 차트 대상 종목의 시장/코드 조회에 필요한 최소 인터페이스입니다.
type HoldingFinder interface {
	FindByID(ctx context.Context, id uint) (*holdingentity.Holding, error)
}

// QuoteHandler는 시세 관련 HTTP 요청을 처리합니다.
type QuoteHandler struct {
	quotes   QuotesUsecase
	refresh  RefreshUsecase
	holdings HoldingFinder
}

// NewQuoteHandler는 QuoteHandler의 새 인스턴스를 생성합니다.
func NewQuoteHandler(quotes QuotesUsecase, refresh RefreshUsecase, holdings HoldingFinder) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, refresh: refresh, holdings: holdings}
}

// Chart는 보유 종목의 파생 차트를 반환합니다.
//
// GET /api/stocks/:id/chart?period=30M|1D|1W|1M
func (h *QuoteHandler) Chart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	period := c.DefaultQuery("period", "1D")

	holding, err := h.holdings.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, holdingusecase.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "holding not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load holding"})
		return
	}

	bars, err := h.quotes.GetChart(c.Request.Context(), holding.Market, holding.Code, period)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownPeriod):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unknown chart period"})
		case errors.Is(err, usecase.ErrSymbolNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "symbol not found"})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to fetch chart"})
		}
		return
	}

	out := make([]api.ChartBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, api.ChartBarResponse{
			Label:       b.Label,
			Timestamp:   b.Timestamp,
			Open:        b.Open,
			High:        b.High,
			Low:         b.Low,
			Close:       b.Close,
			CandleRange: b.CandleRange,
			Volume:      b.Volume,
			IsUp:        b.IsUp,
			MA5:         b.MA5,
			MA20:        b.MA20,
			MA60:        b.MA60,
			MA120:       b.MA120,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ExchangeRate는 USD/KRW 환율을 반환합니다.
//
// GET /api/quotes/exchange-rate
func (h *QuoteHandler) ExchangeRate(c *gin.Context) {
	rate, err := h.quotes.GetExchangeRate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to fetch exchange rate"})
		return
	}
	c.JSON(http.StatusOK, api.ExchangeRateResponse{
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt.Format(time.RFC3339),
	})
}

// Refresh는 전체 보유 종목의 현재가를 일괄 갱신합니다.
// 이미 갱신이 진행 중이면 409를 반환합니다.
//
// POST /api/stocks/refresh
func (h *QuoteHandler) Refresh(c *gin.Context) {
	result, err := h.refresh.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrRefreshInFlight) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "refresh already in flight"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to refresh prices"})
		return
	}
	c.JSON(http.StatusOK, api.RefreshResponse{
		Updated: result.Updated,
		Failed:  result.Failed,
		Rate:    result.Rate,
	})
}
