// Package dto는 Yahoo Finance chart API의 응답 형식을 정의합니다.
package dto

// ChartResponse는 /v8/finance/chart/{symbol}의 최상위 응답입니다.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type Chart struct {
	Result []Result  `json:"result"`
	Error  *APIError `json:"error"`
}

type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta는 현재가 조회에 쓰이는 메타 블록입니다.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	RegularMarketTime  int64   `json:"regularMarketTime"`
}

type Indicators struct {
	Quote []QuoteIndicator `json:"quote"`
}

// QuoteIndicator의 배열들은 timestamp와 인덱스가 맞춰져 있고,
// 거래가 없던 구간은 null로 채워집니다.
type QuoteIndicator struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
