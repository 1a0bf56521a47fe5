// Package jwtmw는 JWT 토큰 발급과 Gin 인증 미들웨어를 제공합니다.
package jwtmw

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration은 발급 토큰의 기본 유효 기간입니다.
const DefaultExpiration = 24 * time.Hour

// Config는 JWT 서명 설정입니다. 시크릿은 기동 시 한 번만 읽어 주입합니다.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig는 환경 변수 JWT_SECRET에서 설정을 읽어옵니다.
func LoadConfig() Config {
	return Config{
		Secret:     os.Getenv("JWT_SECRET"),
		Expiration: DefaultExpiration,
	}
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator는 주어진 설정으로 JWT 제너레이터를 생성합니다.
func NewGenerator(cfg Config) Generator {
	exp := cfg.Expiration
	if exp <= 0 {
		exp = DefaultExpiration
	}
	return &generator{
		secret:     []byte(cfg.Secret),
		expiration: exp,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(g.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
