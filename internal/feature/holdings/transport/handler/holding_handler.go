// Package handler는 holdings 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/holdings/domain/entity"
	"pocket_backend/internal/feature/holdings/usecase"
)

// HoldingsUsecase는 보유 종목 오퍼레이션의 유스케이스를 정의합니다.
// Go 관례에 따라 인터페이스는 소비자(handler)가 정의합니다.
type HoldingsUsecase interface {
	List(ctx context.Context, f usecase.Filter) ([]entity.Holding, error)
	Create(ctx context.Context, h *entity.Holding) (*entity.Holding, error)
	Update(ctx context.Context, h *entity.Holding) (*entity.Holding, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, f usecase.Filter, draggedID, targetID uint) error
}

// ExchangeRateProvider는 집계 환산에 필요한 USD/KRW 환율을 제공합니다.
// quotes 피처의 유스케이스가 구현합니다.
type ExchangeRateProvider interface {
	CurrentRate(ctx context.Context) (float64, error)
}

// HoldingHandler는 보유 종목의 HTTP 요청을 처리합니다.
type HoldingHandler struct {
	uc    HoldingsUsecase
	rates ExchangeRateProvider
}

// NewHoldingHandler는 HoldingHandler의 새 인스턴스를 생성합니다.
func NewHoldingHandler(uc HoldingsUsecase, rates ExchangeRateProvider) *HoldingHandler {
	return &HoldingHandler{uc: uc, rates: rates}
}

func filterFromQuery(c *gin.Context) usecase.Filter {
	return usecase.Filter{
		Market: entity.Market(c.Query("market")),
		Broker: entity.Broker(c.Query("broker")),
	}
}

func toResponse(h entity.Holding) api.HoldingResponse {
	p := usecase.ProfitOf(h)
	res := api.HoldingResponse{
		ID:           h.ID,
		Market:       string(h.Market),
		Broker:       string(h.Broker),
		Name:         h.Name,
		Code:         h.Code,
		Quantity:     h.Quantity,
		AvgPrice:     h.AvgPrice,
		CurrentPrice: h.CurrentPrice,
		Currency:     string(h.Currency),
		Memo:         h.Memo,
		SortOrder:    h.SortOrder,
		Profit:       p.Profit,
	}
	if p.RateValid {
		rate := p.ProfitRate
		res.ProfitRate = &rate
	}
	return res
}

// List는 보유 종목 목록을 반환합니다.
//
// GET /api/stocks?market=KR&broker=namu&summary=true
// summary=true이면 환율을 조회해 포트폴리오 집계를 함께 반환합니다.
// 환율 조회 실패는 목록 응답을 막지 않습니다(집계만 생략).
func (h *HoldingHandler) List(c *gin.Context) {
	holdings, err := h.uc.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list holdings"})
		return
	}

	out := api.HoldingListResponse{Holdings: make([]api.HoldingResponse, 0, len(holdings))}
	for _, holding := range holdings {
		out.Holdings = append(out.Holdings, toResponse(holding))
	}

	if c.Query("summary") == "true" {
		rate, err := h.rates.CurrentRate(c.Request.Context())
		if err != nil {
			slog.Warn("exchange rate unavailable, summary omitted", "error", err)
		} else {
			s := usecase.Summarize(holdings, rate)
			summary := &api.PortfolioSummaryResponse{
				TotalValue:      s.TotalValue,
				TotalInvestment: s.TotalInvestment,
				TotalProfit:     s.TotalProfit,
				USDKRW:          rate,
			}
			if s.RateValid {
				pr := s.ProfitRate
				summary.ProfitRate = &pr
			}
			out.Summary = summary
		}
	}

	c.JSON(http.StatusOK, out)
}

// Create는 보유 종목을 등록합니다.
func (h *HoldingHandler) Create(c *gin.Context) {
	var req api.HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), &entity.Holding{
		Market:   entity.Market(req.Market),
		Broker:   entity.Broker(req.Broker),
		Name:     req.Name,
		Code:     req.Code,
		Quantity: req.Quantity,
		AvgPrice: req.AvgPrice,
		Currency: entity.Currency(req.Currency),
		Memo:     req.Memo,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidHolding) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create holding"})
		return
	}
	c.JSON(http.StatusCreated, toResponse(*created))
}

// Update는 보유 종목을 수정합니다.
func (h *HoldingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req api.HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), &entity.Holding{
		ID:       uint(id),
		Market:   entity.Market(req.Market),
		Broker:   entity.Broker(req.Broker),
		Name:     req.Name,
		Code:     req.Code,
		Quantity: req.Quantity,
		AvgPrice: req.AvgPrice,
		Currency: entity.Currency(req.Currency),
		Memo:     req.Memo,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidHolding):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrHoldingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "holding not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update holding"})
		}
		return
	}
	c.JSON(http.StatusOK, toResponse(*updated))
}

// Delete는 보유 종목을 삭제합니다.
func (h *HoldingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "holding not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete holding"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Reorder는 드래그 정렬을 적용합니다.
//
// PUT /api/stocks/reorder
// 요청에는 현재 화면의 필터(market/broker)를 함께 보내야 하며,
// 정렬은 그 부분 목록 안에서만 일어납니다.
func (h *HoldingHandler) Reorder(c *gin.Context) {
	var req api.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	f := usecase.Filter{
		Market: entity.Market(req.Market),
		Broker: entity.Broker(req.Broker),
	}
	if err := h.uc.Reorder(c.Request.Context(), f, req.DraggedID, req.TargetID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraggedNotInSubset), errors.Is(err, usecase.ErrTargetNotInSubset):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to reorder holdings"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
