package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pocket_backend/internal/feature/holdings/domain/entity"
	"pocket_backend/internal/feature/holdings/usecase"
)

type holdingPostgres struct {
	db *gorm.DB
}

var _ usecase.HoldingRepository = (*holdingPostgres)(nil)

func NewHoldingRepository(db *gorm.DB) *holdingPostgres {
	return &holdingPostgres{db: db}
}

// HoldingModel은 stocks 테이블의 GORM 모델입니다.
type HoldingModel struct {
	ID           uint    `gorm:"primaryKey"`
	Market       string  `gorm:"size:8;not null;index"`
	Broker       string  `gorm:"size:16;not null;index"`
	Name         string  `gorm:"size:128;not null"`
	Code         string  `gorm:"size:32;not null"`
	Quantity     float64 `gorm:"not null"`
	AvgPrice     float64 `gorm:"not null"`
	CurrentPrice float64 `gorm:"not null"`
	Currency     string  `gorm:"size:8;not null"`
	Memo         string  `gorm:"size:500"`
	// sort_order 0은 유효한 선두 자리이므로 default 태그를 달지 않습니다.
	// GORM은 default가 있는 필드의 제로 값을 INSERT에서 생략해 버립니다.
	// 미지정의 999 센티널은 유스케이스가 명시적으로 채웁니다.
	SortOrder int `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (HoldingModel) TableName() string {
	return "stocks"
}

func toModel(h *entity.Holding) HoldingModel {
	return HoldingModel{
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
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func toEntity(m HoldingModel) entity.Holding {
	return entity.Holding{
		ID:           m.ID,
		Market:       entity.Market(m.Market),
		Broker:       entity.Broker(m.Broker),
		Name:         m.Name,
		Code:         m.Code,
		Quantity:     m.Quantity,
		AvgPrice:     m.AvgPrice,
		CurrentPrice: m.CurrentPrice,
		Currency:     entity.Currency(m.Currency),
		Memo:         m.Memo,
		SortOrder:    m.SortOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// List는 필터에 맞는 종목을 sortOrder 오름차순, 동순위는 생성 순으로 반환합니다.
func (r *holdingPostgres) List(ctx context.Context, f usecase.Filter) ([]entity.Holding, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC")
	if f.Market != "" {
		q = q.Where("market = ?", string(f.Market))
	}
	if f.Broker != "" {
		q = q.Where("broker = ?", string(f.Broker))
	}

	var rows []HoldingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Holding, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func (r *holdingPostgres) FindByID(ctx context.Context, id uint) (*entity.Holding, error) {
	var m HoldingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrHoldingNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

func (r *holdingPostgres) Create(ctx context.Context, h *entity.Holding) error {
	m := toModel(h)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	h.ID = m.ID
	h.CreatedAt = m.CreatedAt
	h.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *holdingPostgres) Update(ctx context.Context, h *entity.Holding) error {
	m := toModel(h)
	res := r.db.WithContext(ctx).Model(&HoldingModel{}).Where("id = ?", h.ID).
		Updates(map[string]interface{}{
			"market":        m.Market,
			"broker":        m.Broker,
			"name":          m.Name,
			"code":          m.Code,
			"quantity":      m.Quantity,
			"avg_price":     m.AvgPrice,
			"current_price": m.CurrentPrice,
			"currency":      m.Currency,
			"memo":          m.Memo,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrHoldingNotFound
	}
	return nil
}

func (r *holdingPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&HoldingModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrHoldingNotFound
	}
	return nil
}

// DeleteAll은 모든 종목을 삭제합니다. 백업 복원의 replace 모드에서 씁니다.
func (r *holdingPostgres) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&HoldingModel{}).Error
}

// UpdateSortOrders는 재정렬 결과를 하나의 트랜잭션으로 일괄 반영합니다.
// 중간에 실패하면 전체가 롤백되어 순서가 어긋난 채 남지 않습니다.
func (r *holdingPostgres) UpdateSortOrders(ctx context.Context, updates []usecase.SortOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&HoldingModel{}).Where("id = ?", u.ID).
				Update("sort_order", u.SortOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return usecase.ErrHoldingNotFound
			}
		}
		return nil
	})
}

// UpdateCurrentPrice는 시세 갱신 경로에서 현재가만 갱신합니다.
func (r *holdingPostgres) UpdateCurrentPrice(ctx context.Context, id uint, price float64) error {
	res := r.db.WithContext(ctx).Model(&HoldingModel{}).Where("id = ?", id).
		Update("current_price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrHoldingNotFound
	}
	return nil
}
