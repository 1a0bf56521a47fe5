package usecase

import "errors"

var (
	// ErrEmailAlreadyExists는 동일한 이메일의 사용자가 이미 존재할 때 반환됩니다.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound는 사용자를 찾을 수 없을 때 반환됩니다.
	ErrUserNotFound = errors.New("user not found")
)
