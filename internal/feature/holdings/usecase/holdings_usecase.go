// Package usecase는 보유 종목 관리의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"fmt"

	"pocket_backend/internal/feature/holdings/domain/entity"
)

// Filter는 보유 종목 목록의 표시 조건입니다. 빈 값은 전체를 의미합니다.
type Filter struct {
	Market entity.Market
	Broker entity.Broker
}

// HoldingRepository는 보유 종목의 영속화 계층을 추상화합니다.
// Go 관례에 따라 인터페이스는 소비자(usecase)가 정의합니다.
type HoldingRepository interface {
	// List는 필터에 맞는 종목을 sortOrder 오름차순(동순위는 생성 순)으로 반환합니다.
	List(ctx context.Context, f Filter) ([]entity.Holding, error)

	// FindByID는 ID로 종목 1건을 조회합니다.
	FindByID(ctx context.Context, id uint) (*entity.Holding, error)

	// Create는 새 종목을 영속화하고 부여된 ID를 채웁니다.
	Create(ctx context.Context, h *entity.Holding) error

	// Update는 종목 정보를 갱신합니다.
	Update(ctx context.Context, h *entity.Holding) error

	// Delete는 종목을 삭제합니다.
	Delete(ctx context.Context, id uint) error

	// UpdateSortOrders는 (id, sortOrder) 쌍을 하나의 트랜잭션으로 일괄 갱신합니다.
	UpdateSortOrders(ctx context.Context, updates []SortOrderUpdate) error

	// UpdateCurrentPrice는 현재가만 갱신합니다. 시세 갱신 경로 전용입니다.
	UpdateCurrentPrice(ctx context.Context, id uint, price float64) error
}

// holdingsUsecase는 보유 종목 CRUD와 재정렬 유스케이스를 구현합니다.
type holdingsUsecase struct {
	holdings HoldingRepository
}

// NewHoldingsUsecase는 holdingsUsecase의 새 인스턴스를 생성합니다.
func NewHoldingsUsecase(holdings HoldingRepository) *holdingsUsecase {
	return &holdingsUsecase{holdings: holdings}
}

// validateHolding은 생성/수정 입력값을 검증합니다.
// 네트워크 호출 전에 검증하므로 실패 시 어떤 상태 변화도 없습니다.
func validateHolding(h *entity.Holding) error {
	if !h.Market.Valid() {
		return fmt.Errorf("%w: market %q", ErrInvalidHolding, h.Market)
	}
	if !h.Broker.Valid() {
		return fmt.Errorf("%w: broker %q", ErrInvalidHolding, h.Broker)
	}
	if !h.Currency.Valid() {
		return fmt.Errorf("%w: currency %q", ErrInvalidHolding, h.Currency)
	}
	if h.Name == "" || h.Code == "" {
		return fmt.Errorf("%w: name and code are required", ErrInvalidHolding)
	}
	if h.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidHolding)
	}
	if h.AvgPrice < 0 {
		return fmt.Errorf("%w: avg price must not be negative", ErrInvalidHolding)
	}
	return nil
}

// List는 필터에 맞는 보유 종목 목록을 반환합니다.
func (u *holdingsUsecase) List(ctx context.Context, f Filter) ([]entity.Holding, error) {
	return u.holdings.List(ctx, f)
}

// Create는 새 보유 종목을 등록합니다.
// 현재가는 첫 시세 갱신 전까지 평균단가로 초기화되고,
// 정렬 순서는 미지정(맨 뒤 정렬) 센티널로 초기화됩니다.
func (u *holdingsUsecase) Create(ctx context.Context, h *entity.Holding) (*entity.Holding, error) {
	if err := validateHolding(h); err != nil {
		return nil, err
	}
	h.CurrentPrice = h.AvgPrice
	h.SortOrder = entity.DefaultSortOrder
	if err := u.holdings.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Update는 보유 종목을 수정합니다. 현재가와 정렬 순서는 이 경로로 바꾸지 않습니다.
func (u *holdingsUsecase) Update(ctx context.Context, h *entity.Holding) (*entity.Holding, error) {
	if err := validateHolding(h); err != nil {
		return nil, err
	}
	existing, err := u.holdings.FindByID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	h.CurrentPrice = existing.CurrentPrice
	h.SortOrder = existing.SortOrder
	if err := u.holdings.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete는 보유 종목을 삭제합니다.
func (u *holdingsUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.holdings.FindByID(ctx, id); err != nil {
		return err
	}
	return u.holdings.Delete(ctx, id)
}

// Reorder는 현재 표시 중인 부분 목록 내에서 드래그 정렬을 적용합니다.
// 새 순서는 하나의 트랜잭션으로 영속화되며, 실패하면 순서가 바뀌지 않은 채
// 에러가 반환됩니다. 메모리 상태와 저장 상태가 어긋난 채 남지 않습니다.
func (u *holdingsUsecase) Reorder(ctx context.Context, f Filter, draggedID, targetID uint) error {
	visible, err := u.holdings.List(ctx, f)
	if err != nil {
		return err
	}
	updates, err := ComputeReorder(visible, draggedID, targetID)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return u.holdings.UpdateSortOrders(ctx, updates)
}
