// Package yahoo는 Yahoo Finance chart API에서 시세를 가져오는 어댑터입니다.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"pocket_backend/internal/feature/quotes/adapters/yahoo/dto"
	"pocket_backend/internal/feature/quotes/domain/entity"
	"pocket_backend/internal/feature/quotes/usecase"
)

// Client는 Yahoo Finance chart API 기반의 QuoteGateway 구현입니다.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client가 QuoteGateway를 구현하는지 컴파일 시점에 검증합니다.
var _ usecase.QuoteGateway = (*Client)(nil)

// NewClient는 지정된 설정과 HTTP 클라이언트로 Client를 생성합니다.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// fetchChart는 chart 엔드포인트를 호출해 첫 번째 result를 반환합니다.
// 404와 API 에러 응답은 ErrSymbolNotFound로 매핑합니다.
func (y *Client) fetchChart(ctx context.Context, symbol, interval, rng string) (*dto.Result, error) {
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("range", rng)

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", usecase.ErrSymbolNotFound, symbol)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		if body.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%w: %s", usecase.ErrSymbolNotFound, symbol)
		}
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", usecase.ErrSymbolNotFound, symbol)
	}
	return &body.Chart.Result[0], nil
}

// GetQuote는 종목의 현재가를 조회합니다.
// chart 엔드포인트의 meta 블록만 사용하므로 가장 짧은 범위로 호출합니다.
func (y *Client) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	result, err := y.fetchChart(ctx, symbol, "1d", "1d")
	if err != nil {
		return entity.Quote{}, err
	}
	if result.Meta.RegularMarketPrice == 0 {
		return entity.Quote{}, fmt.Errorf("%w: %s has no market price", usecase.ErrSymbolNotFound, symbol)
	}
	return entity.Quote{
		Symbol:   result.Meta.Symbol,
		Price:    result.Meta.RegularMarketPrice,
		Currency: result.Meta.Currency,
	}, nil
}

// GetChart는 종목의 원시 봉 목록을 조회합니다.
// timestamp와 시가 배열의 길이가 어긋나는 항목은 버립니다.
func (y *Client) GetChart(ctx context.Context, symbol, interval, rng string) ([]entity.RawBar, error) {
	result, err := y.fetchChart(ctx, symbol, interval, rng)
	if err != nil {
		return nil, err
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: empty indicators for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	at := func(xs []*float64, i int) *float64 {
		if i < len(xs) {
			return xs[i]
		}
		return nil
	}

	bars := make([]entity.RawBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		var vol *int64
		if i < len(quote.Volume) {
			vol = quote.Volume[i]
		}
		bars = append(bars, entity.RawBar{
			Timestamp: ts,
			Open:      at(quote.Open, i),
			High:      at(quote.High, i),
			Low:       at(quote.Low, i),
			Close:     at(quote.Close, i),
			Volume:    vol,
		})
	}
	return bars, nil
}
