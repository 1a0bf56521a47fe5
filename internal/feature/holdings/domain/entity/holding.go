// Package entity는 보유 종목 도메인 모델을 정의합니다.
package entity

import "time"

// Market은 종목이 속한 시장입니다.
type Market string

const (
	MarketKR Market = "KR" // 국장
	MarketUS Market = "US" // 미장
)

// Valid는 지원하는 시장인지 확인합니다.
func (m Market) Valid() bool {
	return m == MarketKR || m == MarketUS
}

// Broker는 종목을 보유한 증권사 계좌 구분입니다.
type Broker string

const (
	BrokerNamu Broker = "namu"
	BrokerToss Broker = "toss"
	BrokerISA  Broker = "isa"
)

// Valid는 지원하는 증권사인지 확인합니다.
func (b Broker) Valid() bool {
	return b == BrokerNamu || b == BrokerToss || b == BrokerISA
}

// Currency는 종목의 표시 통화입니다.
type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyUSD Currency = "USD"
)

// Valid는 지원하는 통화인지 확인합니다.
func (c Currency) Valid() bool {
	return c == CurrencyKRW || c == CurrencyUSD
}

// DefaultSortOrder는 정렬 순서가 지정되지 않은 종목의 기본값입니다.
// 목록에서 항상 마지막에 정렬되도록 큰 값을 사용합니다.
const DefaultSortOrder = 999

// Holding은 보유 중인 주식/ETF 포지션 1건입니다.
//
// CurrentPrice는 외부 시세 갱신 전까지 AvgPrice와 같은 값을 가집니다.
// 미장 종목은 소수점 수량(소수점 매수)을 허용합니다.
type Holding struct {
	ID           uint
	Market       Market
	Broker       Broker
	Name         string
	Code         string
	Quantity     float64
	AvgPrice     float64
	CurrentPrice float64
	Currency     Currency
	Memo         string
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
