package usecase

import (
	"context"
	"errors"
	"testing"

	"pocket_backend/internal/feature/settings/domain/entity"
)

// mockSettingsRepository는 SettingsRepository의 인메모리 목입니다.
type mockSettingsRepository struct {
	stored    *entity.Settings
	saveCalls int
}

func (m *mockSettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	if m.stored == nil {
		return nil, nil
	}
	cp := *m.stored
	return &cp, nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, s *entity.Settings) error {
	m.saveCalls++
	if s.ID == 0 {
		s.ID = 1
	}
	cp := *s
	m.stored = &cp
	return nil
}

func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// TestGet_CreatesDefaults는 최초 조회 시 기본 설정이 저장되는지 검증합니다.
func TestGet_CreatesDefaults(t *testing.T) {
	repo := &mockSettingsRepository{}
	uc := NewSettingsUsecase(repo)

	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !s.DarkMode {
		t.Error("expected dark mode on by default")
	}
	if s.DefaultMarket != "all" {
		t.Errorf("expected default market all, got %q", s.DefaultMarket)
	}
	if s.BudgetGoal != 2000000 {
		t.Errorf("expected budget goal 2000000, got %v", s.BudgetGoal)
	}
	if s.StartPage != "/" {
		t.Errorf("expected start page /, got %q", s.StartPage)
	}
	if repo.saveCalls != 1 {
		t.Errorf("expected defaults persisted once, got %d saves", repo.saveCalls)
	}

	// 두 번째 조회는 저장 없이 기존 행을 반환합니다.
	if _, err := uc.Get(context.Background()); err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}
	if repo.saveCalls != 1 {
		t.Errorf("expected no extra save, got %d", repo.saveCalls)
	}
}

// TestUpdate_PartialPatch는 nil 필드가 기존 값을 유지하는지 검증합니다.
func TestUpdate_PartialPatch(t *testing.T) {
	repo := &mockSettingsRepository{}
	uc := NewSettingsUsecase(repo)

	s, err := uc.Update(context.Background(), Patch{DarkMode: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if s.DarkMode {
		t.Error("expected dark mode off")
	}
	if s.BudgetGoal != 2000000 || s.DefaultMarket != "all" {
		t.Error("untouched fields must keep their values")
	}

	s, err = uc.Update(context.Background(), Patch{
		DefaultMarket: strPtr("KR"),
		BudgetGoal:    floatPtr(2500000),
		StartPage:     strPtr("/stock"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if s.DarkMode {
		t.Error("earlier patch must persist")
	}
	if s.DefaultMarket != "KR" || s.BudgetGoal != 2500000 || s.StartPage != "/stock" {
		t.Errorf("unexpected settings after patch: %+v", s)
	}
}

// TestUpdate_Validation은 잘못된 값이 거절되고 기존 설정이 유지되는지 검증합니다.
func TestUpdate_Validation(t *testing.T) {
	repo := &mockSettingsRepository{}
	uc := NewSettingsUsecase(repo)

	cases := []Patch{
		{DefaultMarket: strPtr("JP")},
		{BudgetGoal: floatPtr(-1)},
		{StartPage: strPtr("stocks")},
	}
	for _, p := range cases {
		if _, err := uc.Update(context.Background(), p); !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("expected ErrInvalidSettings for %+v, got %v", p, err)
		}
	}

	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if s.DefaultMarket != "all" || s.BudgetGoal != 2000000 || s.StartPage != "/" {
		t.Errorf("rejected patches must not change settings: %+v", s)
	}
}
