package usecase

import "errors"

var (
	// ErrSymbolNotFound는 외부 시세 API가 심볼을 찾지 못한 경우입니다.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrUnknownPeriod는 지원하지 않는 차트 기간 코드입니다.
	ErrUnknownPeriod = errors.New("unknown chart period")
	// ErrRefreshInFlight는 일괄 갱신이 이미 진행 중일 때 반환됩니다.
	ErrRefreshInFlight = errors.New("refresh already in flight")
)
