// Package adapters는 auth 피처의 리포지토리 구현을 제공합니다.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"pocket_backend/internal/feature/auth/domain/entity"
	"pocket_backend/internal/feature/auth/usecase"
)

// Postgres 에러 코드 23505: unique_violation
const pgUniqueViolation = "23505"

// userPostgres는 UserRepository 인터페이스의 Postgres 구현입니다.
type userPostgres struct {
	db *gorm.DB
}

// userPostgres가 UserRepository를 구현함을 컴파일 타임에 검증합니다.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository는 주어진 gorm.DB 연결로 userPostgres의 새 인스턴스를 생성합니다.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create는 사용자를 데이터베이스에 추가합니다.
// 같은 이메일의 사용자가 이미 있으면 usecase.ErrEmailAlreadyExists를 반환합니다.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrEmailAlreadyExists
		}
		// sqlite(테스트)에서는 gorm이 중복 키 에러를 변환해 줌
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail은 이메일로 사용자를 조회합니다.
// 없으면 usecase.ErrUserNotFound를 반환합니다.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID는 ID로 사용자를 조회합니다.
// 없으면 usecase.ErrUserNotFound를 반환합니다.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
