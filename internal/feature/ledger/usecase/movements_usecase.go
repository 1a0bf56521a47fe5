package usecase

import (
	"context"
	"fmt"

	"pocket_backend/internal/feature/ledger/domain/entity"
)

// MovementRepository는 자산/부채 이동 내역의 영속화를 추상화합니다.
type MovementRepository interface {
	// List는 내역을 날짜 내림차순으로 반환합니다. r이 nil이면 전체입니다.
	List(ctx context.Context, r *MonthRange) ([]entity.Movement, error)
	FindByID(ctx context.Context, id uint) (*entity.Movement, error)
	Create(ctx context.Context, m *entity.Movement) error
	Update(ctx context.Context, m *entity.Movement) error
	Delete(ctx context.Context, id uint) error
}

// MovementsUsecase는 자산 또는 부채 장부 하나의 유스케이스입니다.
// account에 따라 허용되는 이동 종류가 달라집니다.
type MovementsUsecase struct {
	repo    MovementRepository
	account entity.Account
}

func NewMovementsUsecase(repo MovementRepository, account entity.Account) *MovementsUsecase {
	return &MovementsUsecase{repo: repo, account: account}
}

func (u *MovementsUsecase) validate(m *entity.Movement) error {
	if !m.Kind.ValidFor(u.account) {
		return fmt.Errorf("%w: kind %q not allowed for %s ledger", ErrInvalidMovement, m.Kind, u.account)
	}
	if m.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidMovement)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidMovement)
	}
	return nil
}

// List는 내역을 반환합니다. month("YYYY-MM")가 비어 있으면 전체입니다.
func (u *MovementsUsecase) List(ctx context.Context, month string) ([]entity.Movement, error) {
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

func (u *MovementsUsecase) Create(ctx context.Context, m *entity.Movement) (*entity.Movement, error) {
	if err := u.validate(m); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *MovementsUsecase) Update(ctx context.Context, m *entity.Movement) (*entity.Movement, error) {
	if err := u.validate(m); err != nil {
		return nil, err
	}
	if _, err := u.repo.FindByID(ctx, m.ID); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *MovementsUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// Balance는 장부의 현재 잔액입니다.
// 입금/차입은 더하고 출금/상환은 뺍니다. 음수가 될 수 있습니다.
func (u *MovementsUsecase) Balance(ctx context.Context) (float64, error) {
	movements, err := u.repo.List(ctx, nil)
	if err != nil {
		return 0, err
	}
	var balance float64
	for _, m := range movements {
		balance += m.Kind.Sign() * m.Amount
	}
	return balance, nil
}
