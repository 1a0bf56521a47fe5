// Package entity는 영수증 인식 도메인의 엔티티를 정의합니다.
package entity

// Suggestion은 영수증에서 추출한 가계부 내역 제안입니다.
// 사용자가 확인 후 저장하는 초안이며, 그대로 영속화되지 않습니다.
type Suggestion struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Kind   string  `json:"kind"`
	Memo   string  `json:"memo"`
}
