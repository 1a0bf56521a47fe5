package usecase

import "errors"

var (
	// ErrHoldingNotFound는 보유 종목을 찾을 수 없을 때 반환됩니다.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidHolding은 보유 종목 입력값이 유효하지 않을 때 반환됩니다.
	ErrInvalidHolding = errors.New("invalid holding")

	// ErrDraggedNotInSubset은 드래그한 종목이 현재 표시 중인 목록에 없을 때 반환됩니다.
	ErrDraggedNotInSubset = errors.New("dragged holding is not in the displayed subset")

	// ErrTargetNotInSubset은 드롭 대상이 현재 표시 중인 목록에 없을 때 반환됩니다.
	// 탭(필터) 간 이동은 지원하지 않습니다.
	ErrTargetNotInSubset = errors.New("target holding is not in the displayed subset")
)
