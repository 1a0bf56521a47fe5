package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID는 인증된 사용자 ID가 저장되는 gin 컨텍스트 키입니다.
const ContextUserID = "userID"

// AuthRequired는 JWT를 검증하고 인증된 사용자만 통과시키는 Gin 미들웨어를 반환합니다.
// 시크릿은 기동 시 주입되며 요청마다 환경 변수를 읽지 않습니다.
func AuthRequired(cfg Config) gin.HandlerFunc {
	secret := []byte(cfg.Secret)
	return func(c *gin.Context) {
		// 1. Authorization 헤더 확인
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if len(secret) == 0 {
			// 서버 설정 오류 (JWT_SECRET 미설정)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 2. 서명 검증 (HMAC만 허용)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. 클레임에서 사용자 ID 추출
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT의 숫자는 float64로 디코딩됨
				c.Set(ContextUserID, uint(sub))
			}
		}
		c.Next()
	}
}
