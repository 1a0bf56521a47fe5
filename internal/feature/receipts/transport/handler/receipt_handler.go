// Package handler는 receipts 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/receipts/domain/entity"
	"pocket_backend/internal/feature/receipts/usecase"
)

// ReceiptsUsecase는 영수증 인식 유스케이스를 정의합니다.
type ReceiptsUsecase interface {
	Scan(ctx context.Context, imageData []byte) (*entity.Suggestion, error)
}

// ReceiptHandler는 영수증 인식의 HTTP 요청을 처리합니다.
type ReceiptHandler struct {
	uc ReceiptsUsecase
}

func NewReceiptHandler(uc ReceiptsUsecase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Scan은 영수증 이미지를 업로드해 가계부 내역 제안을 받습니다.
//
// POST /api/receipts/scan
// Content-Type: multipart/form-data
// 필드: image (이미지 파일, 최대 10MB)
func (h *ReceiptHandler) Scan(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("receipt image missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open receipt image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close receipt image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read receipt image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	suggestion, err := h.uc.Scan(c.Request.Context(), imageData)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid image"})
		case errors.Is(err, usecase.ErrNoTextFound):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "no text found in image"})
		default:
			slog.Error("receipt scan failed", "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to scan receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, api.ReceiptScanResponse{
		Name:   suggestion.Name,
		Amount: suggestion.Amount,
		Date:   suggestion.Date,
		Kind:   suggestion.Kind,
		Memo:   suggestion.Memo,
	})
}
