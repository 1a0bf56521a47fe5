// Package usecase는 auth 피처의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"pocket_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength는 비밀번호의 최소 길이입니다.
	minPasswordLength = 8
)

// UserRepository는 사용자 엔티티의 영속화 계층을 추상화합니다.
// Go 관례에 따라 인터페이스는 제공자(adapters)가 아닌 소비자(usecase)가 정의합니다.
type UserRepository interface {
	// Create는 새 사용자를 저장소에 영속화합니다.
	// 같은 이메일의 사용자가 이미 있으면 에러를 반환합니다.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail은 이메일로 사용자를 조회합니다.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID는 ID로 사용자를 조회합니다.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator는 JWT 토큰 발급 인터페이스입니다.
type JWTGenerator interface {
	// GenerateToken은 지정된 사용자의 서명된 JWT 토큰을 생성합니다.
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase는 인증 비즈니스 로직을 구현합니다.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase는 authUsecase의 새 인스턴스를 생성합니다.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword는 비밀번호가 보안 요건을 충족하는지 확인합니다.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup은 해시된 비밀번호로 신규 사용자를 등록합니다.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login은 사용자를 인증하고 성공 시 JWT 토큰을 반환합니다.
// 타이밍 공격을 막기 위해 사용자가 없어도 bcrypt 비교를 수행합니다.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// 사용자 미존재 시 타이밍 공격 완화용 더미 해시
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// 미존재/불일치 모두 동일한 일반 에러를 반환
	if err != nil || compareErr != nil {
		return "", errors.New("invalid email or password")
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
