// Package usecase는 가계부의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"fmt"
	"time"

	"pocket_backend/internal/feature/ledger/domain/entity"
)

// MonthRange는 월 필터 1개가 덮는 [From, To) 구간입니다.
type MonthRange struct {
	From time.Time
	To   time.Time
}

// ParseMonth는 "YYYY-MM" 문자열을 월 구간으로 변환합니다.
func ParseMonth(month string) (MonthRange, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthRange{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return MonthRange{From: t, To: t.AddDate(0, 1, 0)}, nil
}

// TransactionRepository는 가계부 내역의 영속화를 추상화합니다.
type TransactionRepository interface {
	List(ctx context.Context, r *MonthRange) ([]entity.Transaction, error)
	FindByID(ctx context.Context, id uint) (*entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uint) error
}

// BudgetSummary는 한 달의 수입/지출 집계입니다.
type BudgetSummary struct {
	Income   float64
	Fixed    float64
	Variable float64
	Expense  float64
	Balance  float64
}

// TransactionsUsecase는 가계부 내역 유스케이스입니다.
type TransactionsUsecase struct {
	repo TransactionRepository
}

func NewTransactionsUsecase(repo TransactionRepository) *TransactionsUsecase {
	return &TransactionsUsecase{repo: repo}
}

func validateTransaction(tx *entity.Transaction) error {
	if !tx.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, tx.Kind)
	}
	if tx.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTransaction)
	}
	if tx.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidTransaction)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	return nil
}

// List는 내역 목록을 반환합니다. month가 비어 있으면 전체를 반환합니다.
func (u *TransactionsUsecase) List(ctx context.Context, month string) ([]entity.Transaction, error) {
	var r *MonthRange
	if month != "" {
		parsed, err := ParseMonth(month)
		if err != nil {
			return nil, err
		}
		r = &parsed
	}
	return u.repo.List(ctx, r)
}

func (u *TransactionsUsecase) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *TransactionsUsecase) Update(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}
	if _, err := u.repo.FindByID(ctx, tx.ID); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *TransactionsUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// SetCompleted는 내역의 완료 상태를 바꿉니다. 변동 지출의 체크리스트 용도입니다.
func (u *TransactionsUsecase) SetCompleted(ctx context.Context, id uint, completed bool) (*entity.Transaction, error) {
	tx, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx.Completed = completed
	if err := u.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// MonthlySummary는 한 달의 수입/지출/잔액을 집계합니다.
func (u *TransactionsUsecase) MonthlySummary(ctx context.Context, month string) (BudgetSummary, error) {
	r, err := ParseMonth(month)
	if err != nil {
		return BudgetSummary{}, err
	}
	txs, err := u.repo.List(ctx, &r)
	if err != nil {
		return BudgetSummary{}, err
	}

	var s BudgetSummary
	for _, tx := range txs {
		switch tx.Kind {
		case entity.KindIncome:
			s.Income += tx.Amount
		case entity.KindFixed:
			s.Fixed += tx.Amount
		case entity.KindVariable:
			s.Variable += tx.Amount
		}
	}
	s.Expense = s.Fixed + s.Variable
	s.Balance = s.Income - s.Expense
	return s, nil
}
