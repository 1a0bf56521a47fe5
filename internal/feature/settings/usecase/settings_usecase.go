// Package usecase는 사용자 설정의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"pocket_backend/internal/feature/settings/domain/entity"
)

// ErrInvalidSettings는 허용되지 않는 설정 값입니다.
var ErrInvalidSettings = errors.New("invalid settings")

// SettingsRepository는 설정 단일 행의 영속화를 추상화합니다.
type SettingsRepository interface {
	// Get은 저장된 설정을 반환합니다. 행이 없으면 (nil, nil)을 반환합니다.
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, s *entity.Settings) error
}

// Patch는 설정 부분 갱신 요청입니다. nil 필드는 기존 값을 유지합니다.
type Patch struct {
	DarkMode      *bool
	DefaultMarket *string
	BudgetGoal    *float64
	StartPage     *string
}

// SettingsUsecase는 설정 조회/갱신 유스케이스입니다.
type SettingsUsecase struct {
	repo SettingsRepository
}

func NewSettingsUsecase(repo SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

// Get은 현재 설정을 반환합니다. 저장된 행이 없으면 기본값을 만들어 저장합니다.
func (u *SettingsUsecase) Get(ctx context.Context) (*entity.Settings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	defaults := entity.Default()
	if err := u.repo.Save(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Update는 요청에 포함된 필드만 덮어씁니다.
func (u *SettingsUsecase) Update(ctx context.Context, p Patch) (*entity.Settings, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}

	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.DefaultMarket != nil {
		switch *p.DefaultMarket {
		case "all", "KR", "US":
			s.DefaultMarket = *p.DefaultMarket
		default:
			return nil, fmt.Errorf("%w: unknown market %q", ErrInvalidSettings, *p.DefaultMarket)
		}
	}
	if p.BudgetGoal != nil {
		if *p.BudgetGoal < 0 {
			return nil, fmt.Errorf("%w: negative budget goal", ErrInvalidSettings)
		}
		s.BudgetGoal = *p.BudgetGoal
	}
	if p.StartPage != nil {
		switch *p.StartPage {
		case "/", "/budget", "/debt", "/stock", "/settings":
			s.StartPage = *p.StartPage
		default:
			return nil, fmt.Errorf("%w: unknown start page %q", ErrInvalidSettings, *p.StartPage)
		}
	}

	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
