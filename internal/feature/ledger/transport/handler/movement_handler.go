package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/ledger/domain/entity"
	"pocket_backend/internal/feature/ledger/usecase"
)

// MovementsUsecase는 자산/부채 장부 오퍼레이션의 유스케이스를 정의합니다.
type MovementsUsecase interface {
	List(ctx context.Context, month string) ([]entity.Movement, error)
	Create(ctx context.Context, m *entity.Movement) (*entity.Movement, error)
	Update(ctx context.Context, m *entity.Movement) (*entity.Movement, error)
	Delete(ctx context.Context, id uint) error
	Balance(ctx context.Context) (float64, error)
}

// MovementHandler는 자산 또는 부채 장부 하나의 HTTP 요청을 처리합니다.
// /api/assets와 /api/debts에 각각 한 인스턴스씩 연결됩니다.
type MovementHandler struct {
	uc MovementsUsecase
}

func NewMovementHandler(uc MovementsUsecase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

func toMovementResponse(m entity.Movement) api.MovementResponse {
	return api.MovementResponse{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Amount:      m.Amount,
		Date:        m.Date.Format(dateLayout),
		Description: m.Description,
	}
}

// List는 내역 목록을 반환합니다. month=YYYY-MM으로 월을 좁힐 수 있습니다.
func (h *MovementHandler) List(c *gin.Context) {
	movements, err := h.uc.List(c.Request.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid month"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list movements"})
		return
	}
	out := make([]api.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MovementHandler) Create(c *gin.Context) {
	var req api.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), &entity.Movement{
		Kind:        entity.MovementKind(req.Kind),
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMovement) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create movement"})
		return
	}
	c.JSON(http.StatusCreated, toMovementResponse(*created))
}

func (h *MovementHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req api.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), &entity.Movement{
		ID:          uint(id),
		Kind:        entity.MovementKind(req.Kind),
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMovement):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrMovementNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "movement not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update movement"})
		}
		return
	}
	c.JSON(http.StatusOK, toMovementResponse(*updated))
}

func (h *MovementHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrMovementNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "movement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete movement"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Balance는 장부의 현재 잔액을 반환합니다.
func (h *MovementHandler) Balance(c *gin.Context) {
	balance, err := h.uc.Balance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to compute balance"})
		return
	}
	c.JSON(http.StatusOK, api.BalanceResponse{Balance: balance})
}
