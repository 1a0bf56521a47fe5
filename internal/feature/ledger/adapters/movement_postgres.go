package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pocket_backend/internal/feature/ledger/domain/entity"
	"pocket_backend/internal/feature/ledger/usecase"
)

// MovementModel은 자산/부채 이동 내역의 GORM 모델입니다.
// 자산(assets)과 부채(debts)가 같은 구조의 테이블을 쓰므로
// 테이블 이름은 저장소 생성 시 주입합니다.
type MovementModel struct {
	ID          uint      `gorm:"primaryKey"`
	Kind        string    `gorm:"size:16;not null"`
	Amount      float64   `gorm:"not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// 장부별 테이블 이름입니다.
const (
	AssetsTable = "assets"
	DebtsTable  = "debts"
)

type movementPostgres struct {
	db    *gorm.DB
	table string
}

var _ usecase.MovementRepository = (*movementPostgres)(nil)

// NewMovementRepository는 지정된 테이블을 쓰는 이동 내역 저장소를 생성합니다.
func NewMovementRepository(db *gorm.DB, table string) *movementPostgres {
	return &movementPostgres{db: db, table: table}
}

func toMovementModel(m *entity.Movement) MovementModel {
	return MovementModel{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMovementEntity(m MovementModel) entity.Movement {
	return entity.Movement{
		ID:          m.ID,
		Kind:        entity.MovementKind(m.Kind),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// List는 날짜 내림차순으로 내역을 반환합니다. mr이 nil이면 전체를 반환합니다.
func (r *movementPostgres) List(ctx context.Context, mr *usecase.MonthRange) ([]entity.Movement, error) {
	q := r.db.WithContext(ctx).Table(r.table).Order("date DESC, id DESC")
	if mr != nil {
		q = q.Where("date >= ? AND date < ?", mr.From, mr.To)
	}

	var rows []MovementModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Movement, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMovementEntity(m))
	}
	return out, nil
}

func (r *movementPostgres) FindByID(ctx context.Context, id uint) (*entity.Movement, error) {
	var m MovementModel
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovementNotFound
		}
		return nil, err
	}
	e := toMovementEntity(m)
	return &e, nil
}

func (r *movementPostgres) Create(ctx context.Context, mv *entity.Movement) error {
	m := toMovementModel(mv)
	if err := r.db.WithContext(ctx).Table(r.table).Create(&m).Error; err != nil {
		return err
	}
	mv.ID = m.ID
	mv.CreatedAt = m.CreatedAt
	mv.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *movementPostgres) Update(ctx context.Context, mv *entity.Movement) error {
	m := toMovementModel(mv)
	res := r.db.WithContext(ctx).Table(r.table).Where("id = ?", mv.ID).
		Updates(map[string]interface{}{
			"kind":        m.Kind,
			"amount":      m.Amount,
			"date":        m.Date,
			"description": m.Description,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovementNotFound
	}
	return nil
}

// DeleteAll은 장부의 모든 내역을 삭제합니다. 백업 복원의 replace 모드에서 씁니다.
func (r *movementPostgres) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Table(r.table).Where("1 = 1").Delete(&MovementModel{}).Error
}

func (r *movementPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&MovementModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovementNotFound
	}
	return nil
}
