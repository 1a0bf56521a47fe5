package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface는 외부 API 호출 빈도를 제한하는 인터페이스입니다.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter는 일정 간격당 호출 횟수를 제한합니다.
// 현재가 일괄 갱신이 종목별 고루틴에서 동시에 호출하므로 뮤텍스로 보호합니다.
type RateLimiter struct {
	limit    int           // 간격당 허용 호출 수
	interval time.Duration // 카운트 리셋 단위

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter는 새로운 RateLimiter 인스턴스를 생성합니다.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded는 상한에 도달했는지 확인하고 필요하면 대기합니다.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	// interval이 지나면 카운트 리셋
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit hit, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
