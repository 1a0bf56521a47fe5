package usecase

import "pocket_backend/internal/feature/holdings/domain/entity"

// Profit은 보유 종목 1건의 평가 손익입니다.
// 평균단가가 0이면 수익률을 정의할 수 없으므로 RateValid가 false가 됩니다.
// NaN을 그대로 전파하지 않고 호출 측이 표시 여부를 결정합니다.
type Profit struct {
	Profit     float64
	ProfitRate float64
	RateValid  bool
}

// ProfitOf는 보유 종목 1건의 손익과 수익률을 계산합니다.
//
//	profit     = quantity × (currentPrice − avgPrice)
//	profitRate = (currentPrice − avgPrice) / avgPrice × 100
func ProfitOf(h entity.Holding) Profit {
	p := Profit{
		Profit: (h.CurrentPrice - h.AvgPrice) * h.Quantity,
	}
	if h.AvgPrice != 0 {
		p.ProfitRate = (h.CurrentPrice - h.AvgPrice) / h.AvgPrice * 100
		p.RateValid = true
	}
	return p
}

// TotalValue는 현재가 기준 평가 금액 합계를 원화로 반환합니다.
// USD 종목은 usdKRW 환율을 곱해 합산하고 KRW 종목은 그대로 더합니다.
func TotalValue(holdings []entity.Holding, usdKRW float64) float64 {
	var total float64
	for _, h := range holdings {
		value := h.CurrentPrice * h.Quantity
		if h.Currency == entity.CurrencyUSD {
			value *= usdKRW
		}
		total += value
	}
	return total
}

// TotalInvestment는 평균단가 기준 투자 원금 합계를 원화로 반환합니다.
func TotalInvestment(holdings []entity.Holding, usdKRW float64) float64 {
	var total float64
	for _, h := range holdings {
		value := h.AvgPrice * h.Quantity
		if h.Currency == entity.CurrencyUSD {
			value *= usdKRW
		}
		total += value
	}
	return total
}

// PortfolioSummary는 포트폴리오 전체의 집계 결과입니다.
type PortfolioSummary struct {
	TotalValue      float64
	TotalInvestment float64
	TotalProfit     float64
	ProfitRate      float64
	RateValid       bool
}

// Summarize는 보유 종목 목록을 집계합니다.
// 증권사/시장별 소계는 미리 필터링한 부분 목록으로 같은 함수를 호출하면 됩니다.
func Summarize(holdings []entity.Holding, usdKRW float64) PortfolioSummary {
	s := PortfolioSummary{
		TotalValue:      TotalValue(holdings, usdKRW),
		TotalInvestment: TotalInvestment(holdings, usdKRW),
	}
	s.TotalProfit = s.TotalValue - s.TotalInvestment
	if s.TotalInvestment != 0 {
		s.ProfitRate = s.TotalProfit / s.TotalInvestment * 100
		s.RateValid = true
	}
	return s
}
