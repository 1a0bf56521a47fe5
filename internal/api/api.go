// Package api는 모든 HTTP 핸들러가 공유하는 요청/응답 DTO를 정의합니다.
package api

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse는 에러 응답의 공통 형식입니다.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse는 단순 성공 메시지 응답입니다.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse는 로그인 성공 시 JWT 토큰을 반환합니다.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest는 회원가입 요청 바디입니다.
type SignupRequest struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required"`
}

// LoginRequest는 로그인 요청 바디입니다.
type LoginRequest struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required"`
}

// HoldingRequest는 보유 종목 생성/수정 요청 바디입니다.
type HoldingRequest struct {
	Market   string  `json:"market" binding:"required,oneof=KR US"`
	Broker   string  `json:"broker" binding:"required,oneof=namu toss isa"`
	Name     string  `json:"name" binding:"required"`
	Code     string  `json:"code" binding:"required"`
	Quantity float64 `json:"quantity" binding:"min=0"`
	AvgPrice float64 `json:"avg_price" binding:"min=0"`
	Currency string  `json:"currency" binding:"required,oneof=KRW USD"`
	Memo     string  `json:"memo"`
}

// HoldingResponse는 보유 종목 1건의 응답입니다.
// profit_rate는 평균단가가 0인 경우 생략됩니다.
type HoldingResponse struct {
	ID           uint     `json:"id"`
	Market       string   `json:"market"`
	Broker       string   `json:"broker"`
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Quantity     float64  `json:"quantity"`
	AvgPrice     float64  `json:"avg_price"`
	CurrentPrice float64  `json:"current_price"`
	Currency     string   `json:"currency"`
	Memo         string   `json:"memo"`
	SortOrder    int      `json:"sort_order"`
	Profit       float64  `json:"profit"`
	ProfitRate   *float64 `json:"profit_rate,omitempty"`
}

// PortfolioSummaryResponse는 포트폴리오 집계 응답입니다.
type PortfolioSummaryResponse struct {
	TotalValue      float64  `json:"total_value"`
	TotalInvestment float64  `json:"total_investment"`
	TotalProfit     float64  `json:"total_profit"`
	ProfitRate      *float64 `json:"profit_rate,omitempty"`
	USDKRW          float64  `json:"usd_krw"`
}

// HoldingListResponse는 보유 종목 목록과 집계를 함께 반환합니다.
type HoldingListResponse struct {
	Holdings []HoldingResponse         `json:"holdings"`
	Summary  *PortfolioSummaryResponse `json:"summary,omitempty"`
}

// ReorderRequest는 드래그 정렬 요청 바디입니다.
// 현재 화면에 표시된 필터(시장/증권사)와 동일한 조건을 함께 보내야 합니다.
// target_id가 0이면 맨 뒤로 이동합니다.
type ReorderRequest struct {
	DraggedID uint   `json:"dragged_id" binding:"required"`
	TargetID  uint   `json:"target_id"`
	Market    string `json:"market" binding:"omitempty,oneof=KR US"`
	Broker    string `json:"broker" binding:"omitempty,oneof=namu toss isa"`
}

// ChartBarResponse는 파생된 차트 봉 1개의 응답입니다.
// 이동평균은 선행 봉이 부족하면 생략됩니다.
type ChartBarResponse struct {
	Label       string   `json:"date"`
	Timestamp   int64    `json:"timestamp"`
	Open        float64  `json:"open"`
	High        float64  `json:"high"`
	Low         float64  `json:"low"`
	Close       float64  `json:"close"`
	CandleRange float64  `json:"candle_range"`
	Volume      int64    `json:"volume"`
	IsUp        bool     `json:"is_up"`
	MA5         *float64 `json:"ma5,omitempty"`
	MA20        *float64 `json:"ma20,omitempty"`
	MA60        *float64 `json:"ma60,omitempty"`
	MA120       *float64 `json:"ma120,omitempty"`
}

// ExchangeRateResponse는 USD/KRW 환율 응답입니다.
type ExchangeRateResponse struct {
	Rate      float64 `json:"rate"`
	UpdatedAt string  `json:"updated_at"`
}

// RefreshResponse는 현재가 일괄 갱신 결과입니다.
type RefreshResponse struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed,omitempty"`
	Rate    float64  `json:"usd_krw,omitempty"`
}

// TransactionRequest는 가계부 내역 생성/수정 요청 바디입니다.
type TransactionRequest struct {
	Kind   string  `json:"kind" binding:"required,oneof=income fixed variable"`
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"min=0"`
	// 값 타입이면 validator의 required가 제로 값을 거르지 못하므로 포인터로 받습니다.
	Date      *openapi_types.Date `json:"date" binding:"required"`
	Completed bool                `json:"completed"`
	Memo      string              `json:"memo"`
}

// TransactionResponse는 가계부 내역 1건의 응답입니다.
type TransactionResponse struct {
	ID        uint    `json:"id"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Memo      string  `json:"memo"`
}

// CompletedRequest는 완료 상태 토글 요청 바디입니다.
type CompletedRequest struct {
	Completed bool `json:"completed"`
}

// BudgetSummaryResponse는 월별 수입/지출 집계입니다.
type BudgetSummaryResponse struct {
	Income   float64 `json:"income"`
	Fixed    float64 `json:"fixed"`
	Variable float64 `json:"variable"`
	Expense  float64 `json:"expense"`
	Balance  float64 `json:"balance"`
}

// MovementRequest는 자산/부채 이동 내역 생성/수정 요청 바디입니다.
// 자산은 deposit|withdraw, 부채는 borrow|repay 종류만 허용됩니다.
type MovementRequest struct {
	Kind        string              `json:"kind" binding:"required"`
	Amount      float64             `json:"amount" binding:"min=0"`
	Date        *openapi_types.Date `json:"date" binding:"required"`
	Description string              `json:"description"`
}

// MovementResponse는 자산/부채 이동 내역 1건의 응답입니다.
type MovementResponse struct {
	ID          uint    `json:"id"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// BalanceResponse는 자산/부채 잔액 응답입니다.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// SettingsRequest는 설정 갱신 요청 바디입니다.
type SettingsRequest struct {
	DarkMode      *bool    `json:"dark_mode"`
	DefaultMarket *string  `json:"default_market"`
	BudgetGoal    *float64 `json:"budget_goal"`
	StartPage     *string  `json:"start_page"`
}

// SettingsResponse는 현재 설정 응답입니다.
type SettingsResponse struct {
	DarkMode      bool    `json:"dark_mode"`
	DefaultMarket string  `json:"default_market"`
	BudgetGoal    float64 `json:"budget_goal"`
	StartPage     string  `json:"start_page"`
}

// ReceiptScanResponse는 영수증 인식 결과로 제안되는 가계부 내역입니다.
type ReceiptScanResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Kind   string  `json:"kind"`
	Memo   string  `json:"memo,omitempty"`
}
