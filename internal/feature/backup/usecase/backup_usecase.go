// Package usecase는 전체 데이터의 내보내기/복원을 구현합니다.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	holdingentity "pocket_backend/internal/feature/holdings/domain/entity"
	holdingusecase "pocket_backend/internal/feature/holdings/usecase"
	ledgerentity "pocket_backend/internal/feature/ledger/domain/entity"
	ledgerusecase "pocket_backend/internal/feature/ledger/usecase"
)

// DocumentVersion은 현재 백업 문서의 버전입니다.
const DocumentVersion = "1.0"

const dateLayout = "2006-01-02"

var (
	// ErrUnsupportedVersion은 알 수 없는 백업 문서 버전입니다.
	ErrUnsupportedVersion = errors.New("unsupported backup version")
	// ErrInvalidBackup은 복원할 수 없는 백업 문서입니다.
	ErrInvalidBackup = errors.New("invalid backup document")
	// ErrInvalidMode는 알 수 없는 복원 모드입니다.
	ErrInvalidMode = errors.New("invalid import mode")
)

// ImportMode는 복원 방식입니다.
type ImportMode string

const (
	// ModeAppend는 기존 데이터를 유지한 채 덧붙입니다.
	ModeAppend ImportMode = "append"
	// ModeReplace는 기존 데이터를 모두 지우고 복원합니다.
	ModeReplace ImportMode = "replace"
)

// BackupTransaction은 백업 문서의 가계부 내역 1건입니다.
type BackupTransaction struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Memo      string  `json:"memo,omitempty"`
}

// BackupMovement는 백업 문서의 자산/부채 이동 내역 1건입니다.
type BackupMovement struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

// BackupHolding은 백업 문서의 보유 종목 1건입니다.
type BackupHolding struct {
	Market       string  `json:"market"`
	Broker       string  `json:"broker"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Quantity     float64 `json:"quantity"`
	AvgPrice     float64 `json:"avg_price"`
	CurrentPrice float64 `json:"current_price"`
	Currency     string  `json:"currency"`
	Memo         string  `json:"memo,omitempty"`
	SortOrder    int     `json:"sort_order"`
}

// BackupData는 백업 문서의 테이블별 데이터 블록입니다.
type BackupData struct {
	Transactions []BackupTransaction `json:"transactions"`
	Assets       []BackupMovement    `json:"assets"`
	Debts        []BackupMovement    `json:"debts"`
	Stocks       []BackupHolding     `json:"stocks"`
}

// Document는 백업 파일 전체입니다.
type Document struct {
	Version    string     `json:"version"`
	ExportedAt string     `json:"exportedAt"`
	Data       BackupData `json:"data"`
}

// Stats는 저장된 데이터의 테이블별 건수입니다.
type Stats struct {
	Transactions int
	Assets       int
	Debts        int
	Stocks       int
}

// TransactionStore는 백업에 필요한 가계부 저장소 오퍼레이션입니다.
type TransactionStore interface {
	List(ctx context.Context, r *ledgerusecase.MonthRange) ([]ledgerentity.Transaction, error)
	Create(ctx context.Context, tx *ledgerentity.Transaction) error
	DeleteAll(ctx context.Context) error
}

// MovementStore는 백업에 필요한 자산/부채 저장소 오퍼레이션입니다.
type MovementStore interface {
	List(ctx context.Context, r *ledgerusecase.MonthRange) ([]ledgerentity.Movement, error)
	Create(ctx context.Context, m *ledgerentity.Movement) error
	DeleteAll(ctx context.Context) error
}

// HoldingStore는 백업에 필요한 보유 종목 저장소 오퍼레이션입니다.
type HoldingStore interface {
	List(ctx context.Context, f holdingusecase.Filter) ([]holdingentity.Holding, error)
	Create(ctx context.Context, h *holdingentity.Holding) error
	DeleteAll(ctx context.Context) error
}

// BackupUsecase는 내보내기/복원/통계 유스케이스입니다.
type BackupUsecase struct {
	transactions TransactionStore
	assets       MovementStore
	debts        MovementStore
	holdings     HoldingStore
	now          func() time.Time
}

func NewBackupUsecase(transactions TransactionStore, assets, debts MovementStore, holdings HoldingStore) *BackupUsecase {
	return &BackupUsecase{
		transactions: transactions,
		assets:       assets,
		debts:        debts,
		holdings:     holdings,
		now:          time.Now,
	}
}

// Export는 모든 데이터를 하나의 문서로 내보냅니다.
func (u *BackupUsecase) Export(ctx context.Context) (Document, error) {
	doc := Document{
		Version:    DocumentVersion,
		ExportedAt: u.now().UTC().Format(time.RFC3339),
		Data: BackupData{
			Transactions: []BackupTransaction{},
			Assets:       []BackupMovement{},
			Debts:        []BackupMovement{},
			Stocks:       []BackupHolding{},
		},
	}

	txs, err := u.transactions.List(ctx, nil)
	if err != nil {
		return Document{}, err
	}
	for _, tx := range txs {
		doc.Data.Transactions = append(doc.Data.Transactions, BackupTransaction{
			Kind:      string(tx.Kind),
			Name:      tx.Name,
			Amount:    tx.Amount,
			Date:      tx.Date.Format(dateLayout),
			Completed: tx.Completed,
			Memo:      tx.Memo,
		})
	}

	for _, ledger := range []struct {
		store MovementStore
		out   *[]BackupMovement
	}{
		{u.assets, &doc.Data.Assets},
		{u.debts, &doc.Data.Debts},
	} {
		movements, err := ledger.store.List(ctx, nil)
		if err != nil {
			return Document{}, err
		}
		for _, m := range movements {
			*ledger.out = append(*ledger.out, BackupMovement{
				Kind:        string(m.Kind),
				Amount:      m.Amount,
				Date:        m.Date.Format(dateLayout),
				Description: m.Description,
			})
		}
	}

	holdings, err := u.holdings.List(ctx, holdingusecase.Filter{})
	if err != nil {
		return Document{}, err
	}
	for _, h := range holdings {
		doc.Data.Stocks = append(doc.Data.Stocks, BackupHolding{
			Market:       string(h.Market),
			Broker:       string(h.Broker),
			Name:         h.Name,
			Code:         h.Code,
			Quantity:     h.Quantity,
			AvgPrice:     h.AvgPrice,
			CurrentPrice: h.CurrentPrice,
			Currency:     string(h.Currency),
			Memo:         h.Memo,
			SortOrder:    h.SortOrder,
		})
	}
	return doc, nil
}

// decode는 문서를 도메인 엔티티로 변환하며 전체를 먼저 검증합니다.
// 일부만 복원된 채 실패하는 일을 막기 위해 쓰기 전에 끝까지 검사합니다.
func decode(doc Document) ([]ledgerentity.Transaction, []ledgerentity.Movement, []ledgerentity.Movement, []holdingentity.Holding, error) {
	parseDate := func(s, where string) (time.Time, error) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad date %q in %s", ErrInvalidBackup, s, where)
		}
		return t, nil
	}

	txs := make([]ledgerentity.Transaction, 0, len(doc.Data.Transactions))
	for _, r := range doc.Data.Transactions {
		kind := ledgerentity.TransactionKind(r.Kind)
		if !kind.Valid() || r.Name == "" || r.Amount < 0 {
			return nil, nil, nil, nil, fmt.Errorf("%w: bad transaction %q", ErrInvalidBackup, r.Name)
		}
		d, err := parseDate(r.Date, "transactions")
		if err != nil {
			return nil, nil, nil, nil, err
		}
		txs = append(txs, ledgerentity.Transaction{
			Kind: kind, Name: r.Name, Amount: r.Amount, Date: d,
			Completed: r.Completed, Memo: r.Memo,
		})
	}

	decodeMovements := func(records []BackupMovement, account ledgerentity.Account, where string) ([]ledgerentity.Movement, error) {
		out := make([]ledgerentity.Movement, 0, len(records))
		for _, r := range records {
			kind := ledgerentity.MovementKind(r.Kind)
			if !kind.ValidFor(account) || r.Amount < 0 {
				return nil, fmt.Errorf("%w: bad movement kind %q in %s", ErrInvalidBackup, r.Kind, where)
			}
			d, err := parseDate(r.Date, where)
			if err != nil {
				return nil, err
			}
			out = append(out, ledgerentity.Movement{
				Kind: kind, Amount: r.Amount, Date: d, Description: r.Description,
			})
		}
		return out, nil
	}

	assets, err := decodeMovements(doc.Data.Assets, ledgerentity.AccountAsset, "assets")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	debts, err := decodeMovements(doc.Data.Debts, ledgerentity.AccountDebt, "debts")
	if err != nil {
		return nil, nil, nil, nil, err
	}

	holdings := make([]holdingentity.Holding, 0, len(doc.Data.Stocks))
	for _, r := range doc.Data.Stocks {
		h := holdingentity.Holding{
			Market:       holdingentity.Market(r.Market),
			Broker:       holdingentity.Broker(r.Broker),
			Name:         r.Name,
			Code:         r.Code,
			Quantity:     r.Quantity,
			AvgPrice:     r.AvgPrice,
			CurrentPrice: r.CurrentPrice,
			Currency:     holdingentity.Currency(r.Currency),
			Memo:         r.Memo,
			SortOrder:    r.SortOrder,
		}
		if !h.Market.Valid() || !h.Broker.Valid() || !h.Currency.Valid() || h.Name == "" {
			return nil, nil, nil, nil, fmt.Errorf("%w: bad holding %q", ErrInvalidBackup, r.Code)
		}
		holdings = append(holdings, h)
	}
	return txs, assets, debts, holdings, nil
}

// Import는 문서를 복원합니다. replace 모드는 기존 데이터를 먼저 지웁니다.
func (u *BackupUsecase) Import(ctx context.Context, doc Document, mode ImportMode) (Stats, error) {
	if doc.Version != DocumentVersion {
		return Stats{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Version)
	}
	if mode != ModeAppend && mode != ModeReplace {
		return Stats{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	txs, assets, debts, holdings, err := decode(doc)
	if err != nil {
		return Stats{}, err
	}

	if mode == ModeReplace {
		for _, wipe := range []func(context.Context) error{
			u.transactions.DeleteAll,
			u.assets.DeleteAll,
			u.debts.DeleteAll,
			u.holdings.DeleteAll,
		} {
			if err := wipe(ctx); err != nil {
				return Stats{}, err
			}
		}
	}

	for i := range txs {
		if err := u.transactions.Create(ctx, &txs[i]); err != nil {
			return Stats{}, err
		}
	}
	for i := range assets {
		if err := u.assets.Create(ctx, &assets[i]); err != nil {
			return Stats{}, err
		}
	}
	for i := range debts {
		if err := u.debts.Create(ctx, &debts[i]); err != nil {
			return Stats{}, err
		}
	}
	for i := range holdings {
		if err := u.holdings.Create(ctx, &holdings[i]); err != nil {
			return Stats{}, err
		}
	}
	return Stats{
		Transactions: len(txs),
		Assets:       len(assets),
		Debts:        len(debts),
		Stocks:       len(holdings),
	}, nil
}

// CurrentStats는 저장된 데이터의 테이블별 건수를 반환합니다.
func (u *BackupUsecase) CurrentStats(ctx context.Context) (Stats, error) {
	txs, err := u.transactions.List(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	assets, err := u.assets.List(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	debts, err := u.debts.List(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	holdings, err := u.holdings.List(ctx, holdingusecase.Filter{})
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Transactions: len(txs),
		Assets:       len(assets),
		Debts:        len(debts),
		Stocks:       len(holdings),
	}, nil
}
