package usecase

import (
	"context"
	"log/slog"
	"sync"

	holdingentity "pocket_backend/internal/feature/holdings/domain/entity"
	holdingusecase "pocket_backend/internal/feature/holdings/usecase"
	"pocket_backend/internal/shared/ratelimiter"
)

// PriceStore는 갱신 대상 종목 조회와 현재가 반영을 추상화합니다.
// holdings 피처의 저장소가 구현합니다.
type PriceStore interface {
	List(ctx context.Context, f holdingusecase.Filter) ([]holdingentity.Holding, error)
	UpdateCurrentPrice(ctx context.Context, id uint, price float64) error
}

// RefreshResult는 일괄 갱신 1회의 결과입니다.
type RefreshResult struct {
	Updated int
	Failed  []string
	Rate    float64
}

// RefreshUsecase는 전체 보유 종목의 현재가를 일괄 갱신합니다.
type RefreshUsecase struct {
	store   PriceStore
	quotes  *QuotesUsecase
	limiter ratelimiter.RateLimiterInterface

	mu       sync.Mutex
	inFlight bool
}

func NewRefreshUsecase(store PriceStore, quotes *QuotesUsecase, limiter ratelimiter.RateLimiterInterface) *RefreshUsecase {
	return &RefreshUsecase{store: store, quotes: quotes, limiter: limiter}
}

// Refresh는 모든 보유 종목의 현재가를 병렬로 조회해 반영합니다.
// 이미 갱신이 진행 중이면 ErrRefreshInFlight를 반환하고,
// 개별 종목의 실패는 전체를 중단시키지 않습니다.
func (u *RefreshUsecase) Refresh(ctx context.Context) (RefreshResult, error) {
	u.mu.Lock()
	if u.inFlight {
		u.mu.Unlock()
		return RefreshResult{}, ErrRefreshInFlight
	}
	u.inFlight = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		u.inFlight = false
		u.mu.Unlock()
	}()

	holdings, err := u.store.List(ctx, holdingusecase.Filter{})
	if err != nil {
		return RefreshResult{}, err
	}

	var (
		wg      sync.WaitGroup
		resMu   sync.Mutex
		updated int
		failed  []string
	)
	for _, h := range holdings {
		wg.Add(1)
		go func(h holdingentity.Holding) {
			defer wg.Done()

			// 종목별 고루틴이 공유하는 리미터로 외부 API 호출 빈도를 제한합니다.
			u.limiter.WaitIfNeeded()
			quote, err := u.quotes.GetPrice(ctx, h.Market, h.Code)
			if err == nil {
				err = u.store.UpdateCurrentPrice(ctx, h.ID, quote.Price)
			}

			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				slog.Warn("price refresh failed", "code", h.Code, "error", err)
				failed = append(failed, h.Code)
				return
			}
			updated++
		}(h)
	}
	wg.Wait()

	result := RefreshResult{Updated: updated, Failed: failed}

	// 환율은 집계 표시용이라 실패해도 갱신 자체는 성공으로 둡니다.
	if rate, err := u.quotes.GetExchangeRate(ctx); err != nil {
		slog.Warn("exchange rate refresh failed", "error", err)
	} else {
		result.Rate = rate.Rate
	}
	return result, nil
}
