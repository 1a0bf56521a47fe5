// Package entity는 시세 도메인의 엔티티를 정의합니다.
package entity

import "time"

// Quote는 한 종목의 현재가입니다.
type Quote struct {
	Symbol   string
	Price    float64
	Currency string
}

// ExchangeRate는 USD/KRW 환율입니다.
type ExchangeRate struct {
	Rate      float64
	UpdatedAt time.Time
}

// RawBar는 외부 API가 내려주는 원시 봉입니다.
// 거래 정지 구간에서는 필드가 비어 있을 수 있어 포인터로 둡니다.
type RawBar struct {
	Timestamp int64    `json:"timestamp"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    *int64   `json:"volume"`
}

// ChartBar는 화면 표시용으로 파생된 봉입니다.
// 이동평균은 선행 봉이 창 크기만큼 쌓이기 전까지 nil입니다.
type ChartBar struct {
	Label       string
	Timestamp   int64
	Open        float64
	High        float64
	Low         float64
	Close       float64
	CandleRange float64
	Volume      int64
	IsUp        bool
	MA5         *float64
	MA20        *float64
	MA60        *float64
	MA120       *float64
}
