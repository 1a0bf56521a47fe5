// Package adapters는 가계부 엔티티의 GORM 저장소 구현입니다.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pocket_backend/internal/feature/ledger/domain/entity"
	"pocket_backend/internal/feature/ledger/usecase"
)

// TransactionModel은 transactions 테이블의 GORM 모델입니다.
type TransactionModel struct {
	ID        uint      `gorm:"primaryKey"`
	Kind      string    `gorm:"size:16;not null;index"`
	Name      string    `gorm:"size:128;not null"`
	Amount    float64   `gorm:"not null"`
	Date      time.Time `gorm:"not null;index"`
	Completed bool      `gorm:"not null;default:false"`
	Memo      string    `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

type transactionPostgres struct {
	db *gorm.DB
}

var _ usecase.TransactionRepository = (*transactionPostgres)(nil)

func NewTransactionRepository(db *gorm.DB) *transactionPostgres {
	return &transactionPostgres{db: db}
}

func toTransactionModel(tx *entity.Transaction) TransactionModel {
	return TransactionModel{
		ID:        tx.ID,
		Kind:      string(tx.Kind),
		Name:      tx.Name,
		Amount:    tx.Amount,
		Date:      tx.Date,
		Completed: tx.Completed,
		Memo:      tx.Memo,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func toTransactionEntity(m TransactionModel) entity.Transaction {
	return entity.Transaction{
		ID:        m.ID,
		Kind:      entity.TransactionKind(m.Kind),
		Name:      m.Name,
		Amount:    m.Amount,
		Date:      m.Date,
		Completed: m.Completed,
		Memo:      m.Memo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// List는 날짜 내림차순으로 내역을 반환합니다. r이 nil이면 전체를 반환합니다.
func (r *transactionPostgres) List(ctx context.Context, mr *usecase.MonthRange) ([]entity.Transaction, error) {
	q := r.db.WithContext(ctx).Order("date DESC, id DESC")
	if mr != nil {
		q = q.Where("date >= ? AND date < ?", mr.From, mr.To)
	}

	var rows []TransactionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toTransactionEntity(m))
	}
	return out, nil
}

func (r *transactionPostgres) FindByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	var m TransactionModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTransactionNotFound
		}
		return nil, err
	}
	e := toTransactionEntity(m)
	return &e, nil
}

func (r *transactionPostgres) Create(ctx context.Context, tx *entity.Transaction) error {
	m := toTransactionModel(tx)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *transactionPostgres) Update(ctx context.Context, tx *entity.Transaction) error {
	m := toTransactionModel(tx)
	res := r.db.WithContext(ctx).Model(&TransactionModel{}).Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"kind":      m.Kind,
			"name":      m.Name,
			"amount":    m.Amount,
			"date":      m.Date,
			"completed": m.Completed,
			"memo":      m.Memo,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}

// DeleteAll은 모든 내역을 삭제합니다. 백업 복원의 replace 모드에서 씁니다.
func (r *transactionPostgres) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&TransactionModel{}).Error
}

func (r *transactionPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&TransactionModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}
