// Package vision은 Google Cloud Vision API 기반의 영수증 텍스트 추출 클라이언트입니다.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"pocket_backend/internal/feature/receipts/usecase"
)

// VisionTextExtractor는 Vision API의 텍스트 인식으로 영수증을 읽습니다.
type VisionTextExtractor struct {
	client *gvision.ImageAnnotatorClient
}

// VisionTextExtractor가 TextExtractor를 구현하는지 컴파일 시점에 검증합니다.
var _ usecase.TextExtractor = (*VisionTextExtractor)(nil)

// NewVisionTextExtractor는 ADC를 사용해 새 인스턴스를 생성합니다.
func NewVisionTextExtractor(ctx context.Context) (*VisionTextExtractor, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextExtractor{client: client}, nil
}

// Close는 Vision API 클라이언트를 해제합니다.
func (v *VisionTextExtractor) Close() error {
	return v.client.Close()
}

// ExtractText는 이미지 바이트에서 전체 텍스트를 추출합니다.
func (v *VisionTextExtractor) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}
	if resp.Responses[0].Error != nil {
		return "", fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	annotation := resp.Responses[0].FullTextAnnotation
	if annotation == nil {
		return "", nil
	}
	return annotation.Text, nil
}
