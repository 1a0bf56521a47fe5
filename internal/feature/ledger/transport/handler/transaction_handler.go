// Package handler는 ledger 피처의 HTTP 핸들러를 제공합니다.
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

const dateLayout = "2006-01-02"

// TransactionsUsecase는 가계부 내역 오퍼레이션의 유스케이스를 정의합니다.
type TransactionsUsecase interface {
	List(ctx context.Context, month string) ([]entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	Delete(ctx context.Context, id uint) error
	SetCompleted(ctx context.Context, id uint, completed bool) (*entity.Transaction, error)
	MonthlySummary(ctx context.Context, month string) (usecase.BudgetSummary, error)
}

// TransactionHandler는 가계부 내역의 HTTP 요청을 처리합니다.
type TransactionHandler struct {
	uc TransactionsUsecase
}

func NewTransactionHandler(uc TransactionsUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func toTransactionResponse(tx entity.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		ID:        tx.ID,
		Kind:      string(tx.Kind),
		Name:      tx.Name,
		Amount:    tx.Amount,
		Date:      tx.Date.Format(dateLayout),
		Completed: tx.Completed,
		Memo:      tx.Memo,
	}
}

func fromTransactionRequest(req api.TransactionRequest) entity.Transaction {
	return entity.Transaction{
		Kind:      entity.TransactionKind(req.Kind),
		Name:      req.Name,
		Amount:    req.Amount,
		Date:      req.Date.Time,
		Completed: req.Completed,
		Memo:      req.Memo,
	}
}

// List는 내역 목록을 반환합니다. month=YYYY-MM으로 월을 좁힐 수 있습니다.
//
// GET /api/transactions?month=2025-03
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.uc.List(c.Request.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid month"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list transactions"})
		return
	}
	out := make([]api.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	c.JSON(http.StatusOK, out)
}

// Create는 내역을 등록합니다.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req api.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tx := fromTransactionRequest(req)
	created, err := h.uc.Create(c.Request.Context(), &tx)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTransaction) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, toTransactionResponse(*created))
}

// Update는 내역을 수정합니다.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req api.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tx := fromTransactionRequest(req)
	tx.ID = uint(id)
	updated, err := h.uc.Update(c.Request.Context(), &tx)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTransaction):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "transaction not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(*updated))
}

// Delete는 내역을 삭제합니다.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// SetCompleted는 완료 상태를 토글합니다.
//
// PUT /api/transactions/:id/completed
func (h *TransactionHandler) SetCompleted(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}
	var req api.CompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	updated, err := h.uc.SetCompleted(c.Request.Context(), uint(id), req.Completed)
	if err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update transaction"})
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(*updated))
}

// Summary는 한 달의 수입/지출 집계를 반환합니다.
//
// GET /api/transactions/summary?month=2025-03
func (h *TransactionHandler) Summary(c *gin.Context) {
	s, err := h.uc.MonthlySummary(c.Request.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid month"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to summarize transactions"})
		return
	}
	c.JSON(http.StatusOK, api.BudgetSummaryResponse{
		Income:   s.Income,
		Fixed:    s.Fixed,
		Variable: s.Variable,
		Expense:  s.Expense,
		Balance:  s.Balance,
	})
}
