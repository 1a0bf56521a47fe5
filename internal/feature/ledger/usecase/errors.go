package usecase

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrMovementNotFound    = errors.New("movement not found")
	ErrInvalidMovement     = errors.New("invalid movement")
	// ErrInvalidMonth는 YYYY-MM 형식이 아닌 월 필터입니다.
	ErrInvalidMonth = errors.New("invalid month")
)
