package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pocket_backend/internal/feature/backup/usecase"
)

// mockBackupUsecase는 BackupUsecase의 목 구현입니다.
type mockBackupUsecase struct {
	ExportFunc       func(ctx context.Context) (usecase.Document, error)
	ImportFunc       func(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error)
	CurrentStatsFunc func(ctx context.Context) (usecase.Stats, error)
}

func (m *mockBackupUsecase) Export(ctx context.Context) (usecase.Document, error) {
	return m.ExportFunc(ctx)
}

func (m *mockBackupUsecase) Import(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error) {
	return m.ImportFunc(ctx, doc, mode)
}

func (m *mockBackupUsecase) CurrentStats(ctx context.Context) (usecase.Stats, error) {
	return m.CurrentStatsFunc(ctx)
}

func setupBackupRouter(uc BackupUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBackupHandler(uc)
	r.GET("/api/backup/export", h.Export)
	r.POST("/api/backup/import", h.Import)
	r.GET("/api/backup/stats", h.Stats)
	return r
}

// TestExport는 백업 문서와 다운로드 헤더가 내려가는지 검증합니다.
func TestExport(t *testing.T) {
	uc := &mockBackupUsecase{
		ExportFunc: func(ctx context.Context) (usecase.Document, error) {
			return usecase.Document{
				Version:    usecase.DocumentVersion,
				ExportedAt: "2025-03-05T00:00:00Z",
				Data: usecase.BackupData{
					Transactions: []usecase.BackupTransaction{},
					Assets:       []usecase.BackupMovement{},
					Debts:        []usecase.BackupMovement{},
					Stocks:       []usecase.BackupHolding{},
				},
			}, nil
		},
	}
	r := setupBackupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "pocket-backup.json") {
		t.Errorf("expected attachment header, got %q", cd)
	}

	var doc usecase.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if doc.Version != usecase.DocumentVersion {
		t.Errorf("expected version %q, got %q", usecase.DocumentVersion, doc.Version)
	}
	if doc.Data.Transactions == nil || doc.Data.Stocks == nil {
		t.Error("data blocks must serialize as arrays, not null")
	}
}

// TestImport는 모드 파싱과 에러 매핑을 검증합니다.
func TestImport(t *testing.T) {
	validBody := `{"version":"1.0","exportedAt":"2025-03-05T00:00:00Z","data":{"transactions":[],"assets":[],"debts":[],"stocks":[]}}`

	t.Run("default mode is append", func(t *testing.T) {
		var gotMode usecase.ImportMode
		uc := &mockBackupUsecase{
			ImportFunc: func(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error) {
				gotMode = mode
				return usecase.Stats{Transactions: 3}, nil
			},
		}
		r := setupBackupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/backup/import", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotMode != usecase.ModeAppend {
			t.Errorf("expected append mode, got %q", gotMode)
		}
		if !strings.Contains(w.Body.String(), `"transactions":3`) {
			t.Errorf("expected stats in body, got %s", w.Body.String())
		}
	})

	t.Run("mode query is forwarded", func(t *testing.T) {
		var gotMode usecase.ImportMode
		uc := &mockBackupUsecase{
			ImportFunc: func(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error) {
				gotMode = mode
				return usecase.Stats{}, nil
			},
		}
		r := setupBackupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/backup/import?mode=replace", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotMode != usecase.ModeReplace {
			t.Errorf("expected replace mode, got %q", gotMode)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"unsupported version", usecase.ErrUnsupportedVersion, http.StatusBadRequest},
			{"invalid document", usecase.ErrInvalidBackup, http.StatusBadRequest},
			{"unknown mode", usecase.ErrInvalidMode, http.StatusBadRequest},
			{"store failure", errors.New("db down"), http.StatusInternalServerError},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockBackupUsecase{
					ImportFunc: func(ctx context.Context, doc usecase.Document, mode usecase.ImportMode) (usecase.Stats, error) {
						return usecase.Stats{}, tt.err
					},
				}
				r := setupBackupRouter(uc)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/api/backup/import", strings.NewReader(validBody))
				req.Header.Set("Content-Type", "application/json")
				r.ServeHTTP(w, req)

				if w.Code != tt.wantStatus {
					t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
				}
			})
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := &mockBackupUsecase{}
		r := setupBackupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/backup/import", strings.NewReader("{broken"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

// TestStats는 건수 응답 직렬화를 검증합니다.
func TestStats(t *testing.T) {
	uc := &mockBackupUsecase{
		CurrentStatsFunc: func(ctx context.Context) (usecase.Stats, error) {
			return usecase.Stats{Transactions: 5, Assets: 2, Debts: 1, Stocks: 4}, nil
		},
	}
	r := setupBackupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backup/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got statsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	want := statsResponse{Transactions: 5, Assets: 2, Debts: 1, Stocks: 4}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
