package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/ledger/domain/entity"
	"pocket_backend/internal/feature/ledger/usecase"
)

type mockTransactionsUsecase struct {
	ListFunc           func(ctx context.Context, month string) ([]entity.Transaction, error)
	CreateFunc         func(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	UpdateFunc         func(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	SetCompletedFunc   func(ctx context.Context, id uint, completed bool) (*entity.Transaction, error)
	MonthlySummaryFunc func(ctx context.Context, month string) (usecase.BudgetSummary, error)
}

func (m *mockTransactionsUsecase) List(ctx context.Context, month string) ([]entity.Transaction, error) {
	return m.ListFunc(ctx, month)
}

func (m *mockTransactionsUsecase) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	return m.CreateFunc(ctx, tx)
}

func (m *mockTransactionsUsecase) Update(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	return m.UpdateFunc(ctx, tx)
}

func (m *mockTransactionsUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockTransactionsUsecase) SetCompleted(ctx context.Context, id uint, completed bool) (*entity.Transaction, error) {
	return m.SetCompletedFunc(ctx, id, completed)
}

func (m *mockTransactionsUsecase) MonthlySummary(ctx context.Context, month string) (usecase.BudgetSummary, error) {
	return m.MonthlySummaryFunc(ctx, month)
}

type mockMovementsUsecase struct {
	ListFunc    func(ctx context.Context, month string) ([]entity.Movement, error)
	CreateFunc  func(ctx context.Context, m *entity.Movement) (*entity.Movement, error)
	UpdateFunc  func(ctx context.Context, m *entity.Movement) (*entity.Movement, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	BalanceFunc func(ctx context.Context) (float64, error)
}

func (m *mockMovementsUsecase) List(ctx context.Context, month string) ([]entity.Movement, error) {
	return m.ListFunc(ctx, month)
}

func (m *mockMovementsUsecase) Create(ctx context.Context, mv *entity.Movement) (*entity.Movement, error) {
	return m.CreateFunc(ctx, mv)
}

func (m *mockMovementsUsecase) Update(ctx context.Context, mv *entity.Movement) (*entity.Movement, error) {
	return m.UpdateFunc(ctx, mv)
}

func (m *mockMovementsUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockMovementsUsecase) Balance(ctx context.Context) (float64, error) {
	return m.BalanceFunc(ctx)
}

func newTransactionRouter(h *TransactionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/transactions", h.List)
	r.POST("/api/transactions", h.Create)
	r.GET("/api/transactions/summary", h.Summary)
	r.PUT("/api/transactions/:id", h.Update)
	r.PUT("/api/transactions/:id/completed", h.SetCompleted)
	r.DELETE("/api/transactions/:id", h.Delete)
	return r
}

// TestTransactionList는 월 필터 전달과 날짜 직렬화를 검증합니다.
func TestTransactionList(t *testing.T) {
	uc := &mockTransactionsUsecase{
		ListFunc: func(ctx context.Context, month string) ([]entity.Transaction, error) {
			assert.Equal(t, "2025-03", month)
			return []entity.Transaction{
				{
					ID: 1, Kind: entity.KindVariable, Name: "장보기", Amount: 45000,
					Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	r := newTransactionRouter(NewTransactionHandler(uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions?month=2025-03", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var res []api.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "2025-03-05", res[0].Date)
	assert.Equal(t, "variable", res[0].Kind)
}

// TestTransactionCreateHandler는 생성 요청 바인딩과 상태 코드를 검증합니다.
func TestTransactionCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"kind":"income","name":"급여","amount":3000000,"date":"2025-03-25"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "binding rejects unknown kind",
			body:       `{"kind":"gift","name":"용돈","amount":10000,"date":"2025-03-25"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing date",
			body:       `{"kind":"income","name":"급여","amount":3000000}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "usecase validation error",
			body:       `{"kind":"income","name":"급여","amount":1,"date":"2025-03-25"}`,
			createErr:  usecase.ErrInvalidTransaction,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockTransactionsUsecase{
				CreateFunc: func(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					assert.Equal(t, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), tx.Date)
					tx.ID = 1
					return tx, nil
				},
			}
			r := newTransactionRouter(NewTransactionHandler(uc))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// TestSetCompletedHandler는 완료 토글 엔드포인트를 검증합니다.
func TestSetCompletedHandler(t *testing.T) {
	uc := &mockTransactionsUsecase{
		SetCompletedFunc: func(ctx context.Context, id uint, completed bool) (*entity.Transaction, error) {
			if id == 99 {
				return nil, usecase.ErrTransactionNotFound
			}
			return &entity.Transaction{
				ID: id, Kind: entity.KindVariable, Name: "외식", Amount: 30000,
				Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Completed: completed,
			}, nil
		},
	}
	r := newTransactionRouter(NewTransactionHandler(uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/transactions/3/completed", bytes.NewBufferString(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res api.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Completed)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/transactions/99/completed", bytes.NewBufferString(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestSummaryHandler는 집계 엔드포인트를 검증합니다.
func TestSummaryHandler(t *testing.T) {
	uc := &mockTransactionsUsecase{
		MonthlySummaryFunc: func(ctx context.Context, month string) (usecase.BudgetSummary, error) {
			if month == "" {
				return usecase.BudgetSummary{}, usecase.ErrInvalidMonth
			}
			return usecase.BudgetSummary{Income: 3200000, Fixed: 800000, Variable: 600000, Expense: 1400000, Balance: 1800000}, nil
		},
	}
	r := newTransactionRouter(NewTransactionHandler(uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/summary?month=2025-03", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var res api.BudgetSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1800000.0, res.Balance)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/summary", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newMovementRouter(h *MovementHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/assets", h.List)
	r.POST("/api/assets", h.Create)
	r.GET("/api/assets/balance", h.Balance)
	r.PUT("/api/assets/:id", h.Update)
	r.DELETE("/api/assets/:id", h.Delete)
	return r
}

// TestMovementHandlers는 이동 내역 엔드포인트의 기본 경로를 검증합니다.
func TestMovementHandlers(t *testing.T) {
	t.Run("create maps kind errors to 400", func(t *testing.T) {
		uc := &mockMovementsUsecase{
			CreateFunc: func(ctx context.Context, mv *entity.Movement) (*entity.Movement, error) {
				return nil, usecase.ErrInvalidMovement
			},
		}
		r := newMovementRouter(NewMovementHandler(uc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/assets", bytes.NewBufferString(`{"kind":"repay","amount":1000,"date":"2025-03-05"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects missing date at binding", func(t *testing.T) {
		r := newMovementRouter(NewMovementHandler(&mockMovementsUsecase{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/assets", bytes.NewBufferString(`{"kind":"deposit","amount":1000}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("balance", func(t *testing.T) {
		uc := &mockMovementsUsecase{
			BalanceFunc: func(ctx context.Context) (float64, error) { return 1200000, nil },
		}
		r := newMovementRouter(NewMovementHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets/balance", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var res api.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 1200000.0, res.Balance)
	})

	t.Run("delete not found", func(t *testing.T) {
		uc := &mockMovementsUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return usecase.ErrMovementNotFound },
		}
		r := newMovementRouter(NewMovementHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/assets/99", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update failure maps to 500", func(t *testing.T) {
		uc := &mockMovementsUsecase{
			UpdateFunc: func(ctx context.Context, mv *entity.Movement) (*entity.Movement, error) {
				return nil, errors.New("database error")
			},
		}
		r := newMovementRouter(NewMovementHandler(uc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/assets/1", bytes.NewBufferString(`{"kind":"deposit","amount":1000,"date":"2025-03-05"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
