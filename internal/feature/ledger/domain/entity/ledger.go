// Package entity는 가계부 도메인의 엔티티를 정의합니다.
package entity

import "time"

// TransactionKind는 가계부 내역의 종류입니다.
type TransactionKind string

const (
	KindIncome   TransactionKind = "income"   // 수입
	KindFixed    TransactionKind = "fixed"    // 고정 지출
	KindVariable TransactionKind = "variable" // 변동 지출
)

func (k TransactionKind) Valid() bool {
	switch k {
	case KindIncome, KindFixed, KindVariable:
		return true
	}
	return false
}

// IsExpense는 지출로 집계되는 종류인지 반환합니다.
func (k TransactionKind) IsExpense() bool {
	return k == KindFixed || k == KindVariable
}

// Transaction은 월 가계부의 내역 1건입니다.
// Date는 날짜 단위로만 의미가 있습니다.
type Transaction struct {
	ID        uint
	Kind      TransactionKind
	Name      string
	Amount    float64
	Date      time.Time
	Completed bool
	Memo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account는 이동 내역이 속한 장부입니다.
type Account string

const (
	AccountAsset Account = "asset" // 자산
	AccountDebt  Account = "debt"  // 부채
)

// MovementKind는 자산/부채 이동 내역의 종류입니다.
type MovementKind string

const (
	KindDeposit  MovementKind = "deposit"  // 자산 입금
	KindWithdraw MovementKind = "withdraw" // 자산 출금
	KindBorrow   MovementKind = "borrow"   // 부채 증가
	KindRepay    MovementKind = "repay"    // 부채 상환
)

// ValidFor는 종류가 해당 장부에서 허용되는지 반환합니다.
func (k MovementKind) ValidFor(account Account) bool {
	switch account {
	case AccountAsset:
		return k == KindDeposit || k == KindWithdraw
	case AccountDebt:
		return k == KindBorrow || k == KindRepay
	}
	return false
}

// Sign은 잔액 집계 시의 부호입니다. 입금/차입은 +1, 출금/상환은 -1입니다.
func (k MovementKind) Sign() float64 {
	if k == KindDeposit || k == KindBorrow {
		return 1
	}
	return -1
}

// Movement는 자산 또는 부채 장부의 이동 내역 1건입니다.
type Movement struct {
	ID          uint
	Kind        MovementKind
	Amount      float64
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
