package usecase

import (
	"math"
	"testing"

	"pocket_backend/internal/feature/holdings/domain/entity"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// TestProfitOf는 손익 공식을 검증합니다.
// 보유: 평균단가 70,000 / 현재가 73,500 / 10주 → 손익 35,000, 수익률 5%.
func TestProfitOf(t *testing.T) {
	t.Parallel()

	h := entity.Holding{
		AvgPrice:     70000,
		CurrentPrice: 73500,
		Quantity:     10,
		Currency:     entity.CurrencyKRW,
	}

	p := ProfitOf(h)

	if !almostEqual(p.Profit, 35000) {
		t.Errorf("expected profit 35000, got %v", p.Profit)
	}
	if !p.RateValid {
		t.Fatal("expected profit rate to be defined")
	}
	if !almostEqual(p.ProfitRate, 5.0) {
		t.Errorf("expected profit rate 5.0, got %v", p.ProfitRate)
	}
}

// TestProfitOf_ZeroAvgPrice는 평균단가 0일 때 NaN 대신
// RateValid=false를 반환하는지 검증합니다.
func TestProfitOf_ZeroAvgPrice(t *testing.T) {
	t.Parallel()

	h := entity.Holding{AvgPrice: 0, CurrentPrice: 100, Quantity: 3}

	p := ProfitOf(h)

	if p.RateValid {
		t.Error("expected RateValid=false when avg price is zero")
	}
	if math.IsNaN(p.ProfitRate) || math.IsInf(p.ProfitRate, 0) {
		t.Errorf("profit rate must not be NaN/Inf, got %v", p.ProfitRate)
	}
	if !almostEqual(p.Profit, 300) {
		t.Errorf("expected profit 300, got %v", p.Profit)
	}
}

// TestTotalValue_MixedCurrency는 통화 혼합 포트폴리오의 환산 합계를 검증합니다.
// KRW 1,000,000 + USD 100 × 1,400 = 1,140,000.
func TestTotalValue_MixedCurrency(t *testing.T) {
	t.Parallel()

	holdings := []entity.Holding{
		{CurrentPrice: 100000, Quantity: 10, Currency: entity.CurrencyKRW},
		{CurrentPrice: 50, Quantity: 2, Currency: entity.CurrencyUSD},
	}

	total := TotalValue(holdings, 1400)

	if !almostEqual(total, 1140000) {
		t.Errorf("expected total value 1140000, got %v", total)
	}
}

// TestTotals_PriceEqualsAvg는 모든 종목의 현재가가 평균단가와 같으면
// 평가 금액과 투자 원금이 같아지는 성질을 검증합니다.
func TestTotals_PriceEqualsAvg(t *testing.T) {
	t.Parallel()

	holdings := []entity.Holding{
		{AvgPrice: 72000, CurrentPrice: 72000, Quantity: 50, Currency: entity.CurrencyKRW},
		{AvgPrice: 195.5, CurrentPrice: 195.5, Quantity: 3.25, Currency: entity.CurrencyUSD},
		{AvgPrice: 52000, CurrentPrice: 52000, Quantity: 30, Currency: entity.CurrencyKRW},
	}

	for _, rate := range []float64{1, 1350.5, 1400} {
		v := TotalValue(holdings, rate)
		i := TotalInvestment(holdings, rate)
		if !almostEqual(v, i) {
			t.Errorf("rate %v: expected value==investment, got value=%v investment=%v", rate, v, i)
		}
	}
}

// TestTotalValue_Empty는 빈 목록이 0을 반환하는지 확인합니다.
func TestTotalValue_Empty(t *testing.T) {
	t.Parallel()

	if got := TotalValue(nil, 1400); got != 0 {
		t.Errorf("expected 0 for empty holdings, got %v", got)
	}
}

// TestSummarize는 집계 손익/수익률 계산을 검증합니다.
func TestSummarize(t *testing.T) {
	t.Parallel()

	holdings := []entity.Holding{
		{AvgPrice: 70000, CurrentPrice: 73500, Quantity: 10, Currency: entity.CurrencyKRW},
	}

	s := Summarize(holdings, 1400)

	if !almostEqual(s.TotalValue, 735000) {
		t.Errorf("expected total value 735000, got %v", s.TotalValue)
	}
	if !almostEqual(s.TotalInvestment, 700000) {
		t.Errorf("expected total investment 700000, got %v", s.TotalInvestment)
	}
	if !almostEqual(s.TotalProfit, 35000) {
		t.Errorf("expected total profit 35000, got %v", s.TotalProfit)
	}
	if !s.RateValid || !almostEqual(s.ProfitRate, 5.0) {
		t.Errorf("expected profit rate 5.0 (valid), got %v (valid=%v)", s.ProfitRate, s.RateValid)
	}
}

// TestSummarize_Empty는 투자 원금이 0이면 수익률이 정의되지 않는지 확인합니다.
func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil, 1400)
	if s.RateValid {
		t.Error("expected RateValid=false for empty portfolio")
	}
}
