// Package usecase는 시세 조회와 차트 파생의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"errors"
	"time"

	holdingentity "pocket_backend/internal/feature/holdings/domain/entity"
	"pocket_backend/internal/feature/quotes/domain/entity"
)

// QuoteGateway는 외부 시세 API를 추상화합니다.
type QuoteGateway interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetChart(ctx context.Context, symbol, interval, rng string) ([]entity.RawBar, error)
}

// fxSymbol은 USD/KRW 환율 조회에 쓰는 심볼입니다.
const fxSymbol = "USDKRW=X"

// ChartPeriod는 화면의 기간 버튼 하나를 외부 API 파라미터로 변환합니다.
type ChartPeriod struct {
	Interval string
	Range    string
}

// ChartPeriods는 지원하는 기간 코드와 API 파라미터의 대응표입니다.
var ChartPeriods = map[string]ChartPeriod{
	"30M": {Interval: "5m", Range: "1d"},
	"1D":  {Interval: "1d", Range: "3mo"},
	"1W":  {Interval: "1d", Range: "6mo"},
	"1M":  {Interval: "1d", Range: "2y"},
}

// SymbolCandidates는 종목 코드를 외부 API 심볼 후보 목록으로 변환합니다.
// 한국 종목은 코스피(.KS)를 먼저 시도하고, 없으면 코스닥(.KQ)을 시도합니다.
func SymbolCandidates(market holdingentity.Market, code string) []string {
	if market == holdingentity.MarketKR {
		return []string{code + ".KS", code + ".KQ"}
	}
	return []string{code}
}

// QuotesUsecase는 시세 조회 유스케이스입니다.
type QuotesUsecase struct {
	gateway QuoteGateway
	loc     *time.Location
}

// NewQuotesUsecase는 새 인스턴스를 생성합니다.
// loc은 차트 라벨의 표시 시간대이며 nil이면 Asia/Seoul입니다.
func NewQuotesUsecase(gateway QuoteGateway, loc *time.Location) *QuotesUsecase {
	return &QuotesUsecase{gateway: gateway, loc: loc}
}

// tryCandidates는 후보 심볼을 순서대로 시도합니다.
// ErrSymbolNotFound일 때만 다음 후보로 넘어가고, 다른 에러는 즉시 반환합니다.
func tryCandidates[T any](
	ctx context.Context,
	candidates []string,
	fetch func(ctx context.Context, symbol string) (T, error),
) (T, error) {
	var zero T
	var lastErr error
	for _, symbol := range candidates {
		out, err := fetch(ctx, symbol)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrSymbolNotFound) {
			return zero, err
		}
		lastErr = err
	}
	return zero, lastErr
}

// GetPrice는 보유 종목의 현재가를 조회합니다.
func (u *QuotesUsecase) GetPrice(ctx context.Context, market holdingentity.Market, code string) (entity.Quote, error) {
	return tryCandidates(ctx, SymbolCandidates(market, code), u.gateway.GetQuote)
}

// GetChart는 기간 코드에 맞는 파생 차트를 반환합니다.
func (u *QuotesUsecase) GetChart(ctx context.Context, market holdingentity.Market, code, period string) ([]entity.ChartBar, error) {
	p, ok := ChartPeriods[period]
	if !ok {
		return nil, ErrUnknownPeriod
	}
	raw, err := tryCandidates(ctx, SymbolCandidates(market, code),
		func(ctx context.Context, symbol string) ([]entity.RawBar, error) {
			return u.gateway.GetChart(ctx, symbol, p.Interval, p.Range)
		})
	if err != nil {
		return nil, err
	}
	return DeriveChartSeries(raw, period, u.loc), nil
}

// CurrentRate는 USD/KRW 환율을 반환합니다.
func (u *QuotesUsecase) CurrentRate(ctx context.Context) (float64, error) {
	rate, err := u.GetExchangeRate(ctx)
	if err != nil {
		return 0, err
	}
	return rate.Rate, nil
}

// GetExchangeRate는 조회 시각과 함께 USD/KRW 환율을 반환합니다.
func (u *QuotesUsecase) GetExchangeRate(ctx context.Context) (entity.ExchangeRate, error) {
	quote, err := u.gateway.GetQuote(ctx, fxSymbol)
	if err != nil {
		return entity.ExchangeRate{}, err
	}
	return entity.ExchangeRate{Rate: quote.Price, UpdatedAt: time.Now()}, nil
}
