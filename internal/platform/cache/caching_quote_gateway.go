// Package cache는 저장소/게이트웨이 인터페이스의 캐싱 구현을 제공합니다.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pocket_backend/internal/feature/quotes/domain/entity"
	"pocket_backend/internal/feature/quotes/usecase"
)

// 외부 시세 API 응답별 캐시 유지 시간입니다.
// 현재가는 짧게, 환율은 변동이 느려 길게 잡습니다.
const (
	priceTTL = time.Minute
	chartTTL = 5 * time.Minute
	fxTTL    = 10 * time.Minute
)

// fxSymbol은 환율 TTL을 적용할 심볼입니다.
const fxSymbol = "USDKRW=X"

// CachingQuoteGateway는 QuoteGateway를 Redis 캐시로 감싸는 데코레이터입니다.
// rdb가 nil이면 캐시 없이 그대로 통과시킵니다.
type CachingQuoteGateway struct {
	inner     usecase.QuoteGateway
	rdb       *redis.Client
	namespace string
}

var _ usecase.QuoteGateway = (*CachingQuoteGateway)(nil)

// NewCachingQuoteGateway는 QuoteGateway에 Redis 캐시를 덧붙입니다.
// namespace가 비어 있으면 "quotes"를 사용합니다.
func NewCachingQuoteGateway(rdb *redis.Client, inner usecase.QuoteGateway, namespace string) *CachingQuoteGateway {
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteGateway{inner: inner, rdb: rdb, namespace: namespace}
}

// GetQuote는 캐시를 먼저 확인하고, 없으면 외부 API로 내려갑니다.
func (c *CachingQuoteGateway) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.GetQuote(ctx, symbol)
	}

	key := fmt.Sprintf("%s:price:%s", c.namespace, safe(symbol))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 깨진 캐시 엔트리는 지웁니다.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetQuote(ctx, symbol)
	if err != nil {
		return entity.Quote{}, err
	}

	ttl := priceTTL
	if symbol == fxSymbol {
		ttl = fxTTL
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, ttl).Err()
	}
	return out, nil
}

// GetChart는 심볼+기간 단위로 원시 봉을 캐싱합니다.
func (c *CachingQuoteGateway) GetChart(ctx context.Context, symbol, interval, rng string) ([]entity.RawBar, error) {
	if c.rdb == nil {
		return c.inner.GetChart(ctx, symbol, interval, rng)
	}

	key := fmt.Sprintf("%s:chart:%s:%s:%s", c.namespace, safe(symbol), safe(interval), safe(rng))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.RawBar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetChart(ctx, symbol, interval, rng)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, chartTTL).Err()
	}
	return out, nil
}

// safe는 Redis 키에 문제가 되는 문자를 치환합니다.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
