// Package gemini는 Google Gemini API 기반의 내역 제안 클라이언트입니다.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"pocket_backend/internal/feature/receipts/usecase"
)

const (
	// DefaultModel은 Gemini API의 기본 모델입니다.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiSuggester는 Gemini API로 내역 제안 텍스트를 생성합니다.
type GeminiSuggester struct {
	client *genai.Client
	model  string
}

// GeminiSuggester가 EntrySuggester를 구현하는지 컴파일 시점에 검증합니다.
var _ usecase.EntrySuggester = (*GeminiSuggester)(nil)

// NewGeminiSuggester는 ADC를 사용해 새 인스턴스를 생성합니다.
// 환경 변수 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION이 필요합니다.
func NewGeminiSuggester(ctx context.Context) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiSuggester{client: client, model: DefaultModel}, nil
}

// Suggest는 프롬프트에서 제안 텍스트를 생성합니다.
func (g *GeminiSuggester) Suggest(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
