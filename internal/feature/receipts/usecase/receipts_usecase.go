// Package usecase는 영수증 인식 피처의 비즈니스 로직을 구현합니다.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	ledgerentity "pocket_backend/internal/feature/ledger/domain/entity"
	"pocket_backend/internal/feature/receipts/domain/entity"
)

const (
	// MaxImageSize는 영수증 이미지 업로드의 최대 크기(10MB)입니다.
	MaxImageSize = 10 * 1024 * 1024

	// suggestionPromptTemplate는 OCR 텍스트를 가계부 내역으로 바꾸는 프롬프트입니다.
	// 응답을 JSON 한 덩어리로 제한해 파싱을 단순하게 유지합니다.
	suggestionPromptTemplate = `다음은 영수증에서 추출한 텍스트입니다. 가게 이름, 합계 금액, 날짜를 찾아
{"name":"가게 이름","amount":합계 금액(숫자),"date":"YYYY-MM-DD","kind":"fixed 또는 variable","memo":"비고"}
형식의 JSON 하나만 출력하세요. 다른 텍스트는 출력하지 마세요.

%s`
)

var (
	// ErrInvalidImage는 비어 있거나 너무 큰 이미지입니다.
	ErrInvalidImage = errors.New("invalid image")
	// ErrNoTextFound는 이미지에서 텍스트를 찾지 못한 경우입니다.
	ErrNoTextFound = errors.New("no text found in image")
	// ErrBadSuggestion은 모델 응답을 내역으로 해석할 수 없는 경우입니다.
	ErrBadSuggestion = errors.New("unusable suggestion from model")
)

// TextExtractor는 이미지에서 텍스트를 추출합니다.
// Go 관례에 따라 인터페이스는 소비자(usecase)가 정의합니다.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// EntrySuggester는 프롬프트에서 내역 제안 텍스트를 생성합니다.
type EntrySuggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// receiptsUsecase는 영수증 인식의 비즈니스 로직을 제공합니다.
type receiptsUsecase struct {
	extractor TextExtractor
	suggester EntrySuggester
}

// NewReceiptsUsecase는 receiptsUsecase의 새 인스턴스를 생성합니다.
func NewReceiptsUsecase(extractor TextExtractor, suggester EntrySuggester) *receiptsUsecase {
	return &receiptsUsecase{extractor: extractor, suggester: suggester}
}

// stripFences는 모델이 붙이는 마크다운 코드 펜스를 제거합니다.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Scan은 영수증 이미지에서 가계부 내역 제안을 만듭니다.
func (u *receiptsUsecase) Scan(ctx context.Context, imageData []byte) (*entity.Suggestion, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInvalidImage, MaxImageSize)
	}

	text, err := u.extractor.ExtractText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoTextFound
	}

	raw, err := u.suggester.Suggest(ctx, fmt.Sprintf(suggestionPromptTemplate, text))
	if err != nil {
		return nil, fmt.Errorf("suggestion failed: %w", err)
	}

	var s entity.Suggestion
	if err := json.Unmarshal([]byte(stripFences(raw)), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSuggestion, err)
	}
	if s.Name == "" || s.Amount < 0 {
		return nil, fmt.Errorf("%w: missing name or negative amount", ErrBadSuggestion)
	}

	// 지출 종류를 벗어난 제안은 변동 지출로 정규화합니다.
	kind := ledgerentity.TransactionKind(s.Kind)
	if !kind.Valid() || !kind.IsExpense() {
		s.Kind = string(ledgerentity.KindVariable)
	}
	return &s, nil
}
