// Package handler는 backup 피처의 HTTP 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/api"
	"pocket_backend/internal/feature/backup/usecase"
)

// BackupUsecase는 내보내기/복원/통계 유스케이스를 정의합니다.
type BackupUsecase interface {
	Export(ctx context.Context) (usecase.Document, error)
	Import(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error)
	CurrentStats(ctx context.Context) (usecase.Stats, error)
}

// BackupHandler는 백업의 HTTP 요청을 처리합니다.
type BackupHandler struct {
	uc BackupUsecase
}

func NewBackupHandler(uc BackupUsecase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// statsResponse는 테이블별 건수 응답입니다.
type statsResponse struct {
	Transactions int `json:"transactions"`
	Assets       int `json:"assets"`
	Debts        int `json:"debts"`
	Stocks       int `json:"stocks"`
}

func toStatsResponse(s usecase.Stats) statsResponse {
	return statsResponse{
		Transactions: s.Transactions,
		Assets:       s.Assets,
		Debts:        s.Debts,
		Stocks:       s.Stocks,
	}
}

// Export는 전체 데이터를 백업 문서로 내려줍니다.
// 브라우저 다운로드를 위해 첨부 파일 헤더를 함께 보냅니다.
//
// GET /api/backup/export
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.uc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to export data"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pocket-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// Import는 백업 문서를 복원합니다.
//
// POST /api/backup/import?mode=append|replace (기본 append)
func (h *BackupHandler) Import(c *gin.Context) {
	var doc usecase.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid backup document"})
		return
	}
	mode := usecase.ImportMode(c.DefaultQuery("mode", string(usecase.ModeAppend)))

	stats, err := h.uc.Import(c.Request.Context(), doc, mode)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedVersion),
			errors.Is(err, usecase.ErrInvalidBackup),
			errors.Is(err, usecase.ErrInvalidMode):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to import data"})
		}
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}

// Stats는 저장된 데이터의 테이블별 건수를 반환합니다.
//
// GET /api/backup/stats
func (h *BackupHandler) Stats(c *gin.Context) {
	stats, err := h.uc.CurrentStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}
