// Package router는 전체 HTTP 라우트를 조립합니다.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "pocket_backend/internal/feature/auth/transport/handler"
	backuphandler "pocket_backend/internal/feature/backup/transport/handler"
	holdinghandler "pocket_backend/internal/feature/holdings/transport/handler"
	ledgerhandler "pocket_backend/internal/feature/ledger/transport/handler"
	quotehandler "pocket_backend/internal/feature/quotes/transport/handler"
	receipthandler "pocket_backend/internal/feature/receipts/transport/handler"
	settingshandler "pocket_backend/internal/feature/settings/transport/handler"
	jwtmw "pocket_backend/internal/platform/jwt"
)

// Handlers는 라우터 조립에 필요한 피처별 핸들러 묶음입니다.
type Handlers struct {
	Auth         *authhandler.AuthHandler
	Holdings     *holdinghandler.HoldingHandler
	Quotes       *quotehandler.QuoteHandler
	Transactions *ledgerhandler.TransactionHandler
	Assets       *ledgerhandler.MovementHandler
	Debts        *ledgerhandler.MovementHandler
	Settings     *settingshandler.SettingsHandler
	Backup       *backuphandler.BackupHandler
	Receipts     *receipthandler.ReceiptHandler
}

// NewRouter는 모든 라우트가 등록된 gin 엔진을 반환합니다.
func NewRouter(jwtCfg jwtmw.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	// SPA가 교차 출처로 호출하므로 CORS를 허용합니다.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// 인증 불필요
	// 연결 확인용
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	// 신규 사용자 등록
	r.POST("/signup", h.Auth.Signup)
	// 로그인 (JWT 발급)
	r.POST("/login", h.Auth.Login)

	// 인증 필수 라우트
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(jwtCfg))
	{
		// 보유 종목
		api.GET("/stocks", h.Holdings.List)
		api.POST("/stocks", h.Holdings.Create)
		api.PUT("/stocks/reorder", h.Holdings.Reorder)
		api.POST("/stocks/refresh", h.Quotes.Refresh)
		api.PUT("/stocks/:id", h.Holdings.Update)
		api.DELETE("/stocks/:id", h.Holdings.Delete)
		api.GET("/stocks/:id/chart", h.Quotes.Chart)

		// 시세
		api.GET("/quotes/exchange-rate", h.Quotes.ExchangeRate)

		// 가계부
		api.GET("/transactions", h.Transactions.List)
		api.POST("/transactions", h.Transactions.Create)
		api.GET("/transactions/summary", h.Transactions.Summary)
		api.PUT("/transactions/:id/completed", h.Transactions.SetCompleted)
		api.PUT("/transactions/:id", h.Transactions.Update)
		api.DELETE("/transactions/:id", h.Transactions.Delete)

		// 자산
		api.GET("/assets", h.Assets.List)
		api.POST("/assets", h.Assets.Create)
		api.GET("/assets/balance", h.Assets.Balance)
		api.PUT("/assets/:id", h.Assets.Update)
		api.DELETE("/assets/:id", h.Assets.Delete)

		// 부채
		api.GET("/debts", h.Debts.List)
		api.POST("/debts", h.Debts.Create)
		api.GET("/debts/balance", h.Debts.Balance)
		api.PUT("/debts/:id", h.Debts.Update)
		api.DELETE("/debts/:id", h.Debts.Delete)

		// 설정
		api.GET("/settings", h.Settings.Get)
		api.PUT("/settings", h.Settings.Update)

		// 백업
		api.GET("/backup/export", h.Backup.Export)
		api.POST("/backup/import", h.Backup.Import)
		api.GET("/backup/stats", h.Backup.Stats)

		// 영수증 인식 (Google Cloud 자격 증명이 없으면 비활성)
		if h.Receipts != nil {
			api.POST("/receipts/scan", h.Receipts.Scan)
		}
	}

	return r
}
