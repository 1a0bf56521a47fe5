package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"pocket_backend/internal/app/router"
	authadapters "pocket_backend/internal/feature/auth/adapters"
	authentity "pocket_backend/internal/feature/auth/domain/entity"
	authhandler "pocket_backend/internal/feature/auth/transport/handler"
	authusecase "pocket_backend/internal/feature/auth/usecase"
	backuphandler "pocket_backend/internal/feature/backup/transport/handler"
	backupusecase "pocket_backend/internal/feature/backup/usecase"
	holdingadapters "pocket_backend/internal/feature/holdings/adapters"
	holdinghandler "pocket_backend/internal/feature/holdings/transport/handler"
	holdingusecase "pocket_backend/internal/feature/holdings/usecase"
	ledgeradapters "pocket_backend/internal/feature/ledger/adapters"
	ledgerentity "pocket_backend/internal/feature/ledger/domain/entity"
	ledgerhandler "pocket_backend/internal/feature/ledger/transport/handler"
	ledgerusecase "pocket_backend/internal/feature/ledger/usecase"
	"pocket_backend/internal/feature/quotes/adapters/yahoo"
	quotehandler "pocket_backend/internal/feature/quotes/transport/handler"
	quotesusecase "pocket_backend/internal/feature/quotes/usecase"
	"pocket_backend/internal/feature/receipts/adapters/gemini"
	"pocket_backend/internal/feature/receipts/adapters/vision"
	receipthandler "pocket_backend/internal/feature/receipts/transport/handler"
	receiptsusecase "pocket_backend/internal/feature/receipts/usecase"
	settingsadapters "pocket_backend/internal/feature/settings/adapters"
	settingshandler "pocket_backend/internal/feature/settings/transport/handler"
	settingsusecase "pocket_backend/internal/feature/settings/usecase"
	"pocket_backend/internal/platform/cache"
	platformdb "pocket_backend/internal/platform/db"
	httpclient "pocket_backend/internal/platform/http"
	jwtmw "pocket_backend/internal/platform/jwt"
	platformredis "pocket_backend/internal/platform/redis"
	"pocket_backend/internal/shared/ratelimiter"
)

// chartLocation은 차트 라벨의 표시 시간대를 읽어옵니다.
// CHART_TZ가 비어 있거나 잘못되면 기본값(Asia/Seoul)을 씁니다.
func chartLocation() *time.Location {
	name := os.Getenv("CHART_TZ")
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid CHART_TZ, falling back to default", "value", name, "error", err)
		return nil
	}
	return loc
}

func main() {
	ctx := context.Background()

	// DB
	db := platformdb.OpenDB()
	if err := db.AutoMigrate(
		&authentity.User{},
		&holdingadapters.HoldingModel{},
		&ledgeradapters.TransactionModel{},
		&settingsadapters.SettingsModel{},
	); err != nil {
		log.Fatalf("auto migration failed: %v", err)
	}
	// 자산/부채는 같은 모델을 테이블만 바꿔 씁니다.
	if err := db.Table(ledgeradapters.AssetsTable).AutoMigrate(&ledgeradapters.MovementModel{}); err != nil {
		log.Fatalf("assets migration failed: %v", err)
	}
	if err := db.Table(ledgeradapters.DebtsTable).AutoMigrate(&ledgeradapters.MovementModel{}); err != nil {
		log.Fatalf("debts migration failed: %v", err)
	}

	// Redis (없어도 기동은 계속, 캐시만 생략)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		slog.Warn("redis unavailable, running without cache")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// JWT
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		slog.Warn("JWT_SECRET is not set, set a strong secret in production")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	holdingRepo := holdingadapters.NewHoldingRepository(db)
	txRepo := ledgeradapters.NewTransactionRepository(db)
	assetRepo := ledgeradapters.NewMovementRepository(db, ledgeradapters.AssetsTable)
	debtRepo := ledgeradapters.NewMovementRepository(db, ledgeradapters.DebtsTable)
	settingsRepo := settingsadapters.NewSettingsRepository(db)

	// 시세 게이트웨이 (Yahoo + Redis 캐시 데코레이터)
	yahooClient := yahoo.NewClient(yahoo.LoadConfig(), httpclient.NewHTTPClient(10*time.Second))
	gateway := cache.NewCachingQuoteGateway(rdb, yahooClient, "quotes")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(jwtCfg))
	holdingsUC := holdingusecase.NewHoldingsUsecase(holdingRepo)
	quotesUC := quotesusecase.NewQuotesUsecase(gateway, chartLocation())
	limiter := ratelimiter.NewRateLimiter(10, time.Second)
	refreshUC := quotesusecase.NewRefreshUsecase(holdingRepo, quotesUC, limiter)
	txUC := ledgerusecase.NewTransactionsUsecase(txRepo)
	assetsUC := ledgerusecase.NewMovementsUsecase(assetRepo, ledgerentity.AccountAsset)
	debtsUC := ledgerusecase.NewMovementsUsecase(debtRepo, ledgerentity.AccountDebt)
	settingsUC := settingsusecase.NewSettingsUsecase(settingsRepo)
	backupUC := backupusecase.NewBackupUsecase(txRepo, assetRepo, debtRepo, holdingRepo)

	// Handler
	h := router.Handlers{
		Auth:         authhandler.NewAuthHandler(authUC),
		Holdings:     holdinghandler.NewHoldingHandler(holdingsUC, quotesUC),
		Quotes:       quotehandler.NewQuoteHandler(quotesUC, refreshUC, holdingRepo),
		Transactions: ledgerhandler.NewTransactionHandler(txUC),
		Assets:       ledgerhandler.NewMovementHandler(assetsUC),
		Debts:        ledgerhandler.NewMovementHandler(debtsUC),
		Settings:     settingshandler.NewSettingsHandler(settingsUC),
		Backup:       backuphandler.NewBackupHandler(backupUC),
	}

	// 영수증 인식은 Google Cloud 자격 증명이 있을 때만 켭니다.
	if extractor, err := vision.NewVisionTextExtractor(ctx); err != nil {
		slog.Warn("vision client unavailable, receipt scan disabled", "error", err)
	} else if suggester, err := gemini.NewGeminiSuggester(ctx); err != nil {
		slog.Warn("gemini client unavailable, receipt scan disabled", "error", err)
	} else {
		defer func() {
			if err := extractor.Close(); err != nil {
				slog.Warn("failed to close vision client", "error", err)
			}
		}()
		h.Receipts = receipthandler.NewReceiptHandler(receiptsusecase.NewReceiptsUsecase(extractor, suggester))
	}

	// 현재가 주기 갱신. 진행 중인 틱과 겹치면 그대로 건너뜁니다.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if _, err := refreshUC.Refresh(context.Background()); err != nil &&
			!errors.Is(err, quotesusecase.ErrRefreshInFlight) {
			slog.Warn("scheduled price refresh failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("failed to register refresh schedule: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := router.NewRouter(jwtCfg, h)
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
