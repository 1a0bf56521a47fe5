package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pocket_backend/internal/feature/holdings/domain/entity"
	"pocket_backend/internal/feature/holdings/usecase"
)

// newTestDB는 테스트용 인메모리 sqlite 연결을 생성합니다.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&HoldingModel{}))
	return db
}

func seedHolding(t *testing.T, repo *holdingPostgres, name, code string, sortOrder int, createdAt time.Time) entity.Holding {
	t.Helper()
	h := &entity.Holding{
		Market:       entity.MarketKR,
		Broker:       entity.BrokerNamu,
		Name:         name,
		Code:         code,
		Quantity:     10,
		AvgPrice:     1000,
		CurrentPrice: 1000,
		Currency:     entity.CurrencyKRW,
		SortOrder:    sortOrder,
		CreatedAt:    createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), h))
	return *h
}

// TestList_SortOrder는 sortOrder 오름차순, 동순위는 생성 순으로
// 정렬되는지 검증합니다. 미지정(999) 종목은 항상 마지막입니다.
func TestList_SortOrder(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := seedHolding(t, repo, "카카오", "035720", 1, base)
	second := seedHolding(t, repo, "삼성전자", "005930", 0, base.Add(time.Minute))
	unordered := seedHolding(t, repo, "NAVER", "035420", entity.DefaultSortOrder, base.Add(2*time.Minute))

	got, err := repo.List(ctx, usecase.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, unordered.ID, got[2].ID)
}

// TestCreate_KeepsZeroSortOrder는 명시된 선두 순서(0)가 저장 과정에서
// 기본값으로 바뀌지 않는지 검증합니다. 백업 복원이 순서를 그대로
// 넣는 경로라 0이 999로 둔갑하면 첫 종목이 맨 뒤로 밀립니다.
func TestCreate_KeepsZeroSortOrder(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	h := seedHolding(t, repo, "삼성전자", "005930", 0, time.Now())

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SortOrder)
}

// TestList_Filter는 시장/증권사 필터를 검증합니다.
func TestList_Filter(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	kr := &entity.Holding{
		Market: entity.MarketKR, Broker: entity.BrokerNamu,
		Name: "삼성전자", Code: "005930", Currency: entity.CurrencyKRW,
		SortOrder: entity.DefaultSortOrder,
	}
	us := &entity.Holding{
		Market: entity.MarketUS, Broker: entity.BrokerToss,
		Name: "Apple", Code: "AAPL", Currency: entity.CurrencyUSD,
		SortOrder: entity.DefaultSortOrder,
	}
	require.NoError(t, repo.Create(ctx, kr))
	require.NoError(t, repo.Create(ctx, us))

	got, err := repo.List(ctx, usecase.Filter{Market: entity.MarketUS})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Code)

	got, err = repo.List(ctx, usecase.Filter{Broker: entity.BrokerNamu})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "005930", got[0].Code)
}

// TestUpdateSortOrders는 일괄 정렬 갱신이 트랜잭션으로 반영되고,
// 없는 ID가 섞이면 전체가 롤백되는지 검증합니다.
func TestUpdateSortOrders(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := seedHolding(t, repo, "A", "000001", 0, base)
	b := seedHolding(t, repo, "B", "000002", 1, base.Add(time.Minute))

	err := repo.UpdateSortOrders(ctx, []usecase.SortOrderUpdate{
		{ID: a.ID, SortOrder: 1},
		{ID: b.ID, SortOrder: 0},
	})
	require.NoError(t, err)

	got, err := repo.List(ctx, usecase.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)

	// 없는 ID가 섞인 배치는 전체 롤백
	err = repo.UpdateSortOrders(ctx, []usecase.SortOrderUpdate{
		{ID: a.ID, SortOrder: 0},
		{ID: 9999, SortOrder: 1},
	})
	assert.ErrorIs(t, err, usecase.ErrHoldingNotFound)

	got, err = repo.List(ctx, usecase.Filter{})
	require.NoError(t, err)
	assert.Equal(t, b.ID, got[0].ID, "failed batch must not change the order")
}

// TestUpdateCurrentPrice는 현재가만 갱신되는지 검증합니다.
func TestUpdateCurrentPrice(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	h := seedHolding(t, repo, "삼성전자", "005930", 0, time.Now())

	require.NoError(t, repo.UpdateCurrentPrice(ctx, h.ID, 73500))

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 73500.0, got.CurrentPrice)
	assert.Equal(t, 1000.0, got.AvgPrice, "avg price must not change")

	assert.ErrorIs(t, repo.UpdateCurrentPrice(ctx, 9999, 1), usecase.ErrHoldingNotFound)
}

// TestCRUD는 생성/조회/수정/삭제 왕복을 검증합니다.
func TestCRUD(t *testing.T) {
	repo := NewHoldingRepository(newTestDB(t))
	ctx := context.Background()

	h := seedHolding(t, repo, "삼성전자", "005930", 0, time.Now())
	require.NotZero(t, h.ID)

	h.Name = "삼성전자우"
	h.AvgPrice = 60000
	require.NoError(t, repo.Update(ctx, &h))

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "삼성전자우", got.Name)
	assert.Equal(t, 60000.0, got.AvgPrice)

	require.NoError(t, repo.Delete(ctx, h.ID))
	_, err = repo.FindByID(ctx, h.ID)
	assert.ErrorIs(t, err, usecase.ErrHoldingNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, h.ID), usecase.ErrHoldingNotFound)
}
