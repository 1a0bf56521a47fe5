// Package adapters는 설정 엔티티의 GORM 저장소 구현입니다.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pocket_backend/internal/feature/settings/domain/entity"
	"pocket_backend/internal/feature/settings/usecase"
)

// SettingsModel은 settings 테이블의 GORM 모델입니다. 행은 1개만 유지합니다.
type SettingsModel struct {
	ID            uint    `gorm:"primaryKey"`
	DarkMode      bool    `gorm:"not null"`
	DefaultMarket string  `gorm:"size:8;not null"`
	BudgetGoal    float64 `gorm:"not null"`
	StartPage     string  `gorm:"size:64;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SettingsModel) TableName() string {
	return "settings"
}

type settingsPostgres struct {
	db *gorm.DB
}

var _ usecase.SettingsRepository = (*settingsPostgres)(nil)

func NewSettingsRepository(db *gorm.DB) *settingsPostgres {
	return &settingsPostgres{db: db}
}

func (r *settingsPostgres) Get(ctx context.Context) (*entity.Settings, error) {
	var m SettingsModel
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.Settings{
		ID:            m.ID,
		DarkMode:      m.DarkMode,
		DefaultMarket: m.DefaultMarket,
		BudgetGoal:    m.BudgetGoal,
		StartPage:     m.StartPage,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func (r *settingsPostgres) Save(ctx context.Context, s *entity.Settings) error {
	m := SettingsModel{
		ID:            s.ID,
		DarkMode:      s.DarkMode,
		DefaultMarket: s.DefaultMarket,
		BudgetGoal:    s.BudgetGoal,
		StartPage:     s.StartPage,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	s.UpdatedAt = m.UpdatedAt
	return nil
}
