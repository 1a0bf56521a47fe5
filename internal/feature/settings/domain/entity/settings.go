// Package entity는 사용자 설정 엔티티를 정의합니다.
package entity

import "time"

// Settings는 앱 전역 설정입니다. 단일 행으로 유지됩니다.
type Settings struct {
	ID            uint
	DarkMode      bool
	DefaultMarket string
	BudgetGoal    float64
	StartPage     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Default는 최초 실행 시의 기본 설정입니다.
func Default() Settings {
	return Settings{
		DarkMode:      true,
		DefaultMarket: "all",
		BudgetGoal:    2000000,
		StartPage:     "/",
	}
}
