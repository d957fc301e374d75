package ledgertx

import (
	"errors"
	"time"
)

var ErrInvalidType = errors.New("invalid transaction type")

type Type string

const (
	TypeInvest    Type = "invest"
	TypeRepayment Type = "repayment"
	TypeRefund    Type = "refund"
)

// RepaymentTypes are the cashflow types read back by the schedule builder
// and the performance analytics: everything except invest.
var RepaymentTypes = []Type{TypeRepayment, TypeRefund}

func IsRepaymentType(t Type) bool {
	for _, rt := range RepaymentTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Transaction is an append-only cash movement. Rows are never updated or
// deleted once written, so there is no UpdatedAt and no soft delete.
// Every invest-type row pairs with exactly one Investment of equal amount
// created in the same logical operation.
type Transaction struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	InvestmentID  string    `gorm:"size:32;index:idx_transactions_investment" json:"investment_id"`
	FromUserID    string    `gorm:"size:32;index:idx_transactions_from" json:"from_user_id"`
	ToUserID      string    `gorm:"size:32;index:idx_transactions_to" json:"to_user_id"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Type          Type      `gorm:"type:enum('invest','repayment','refund')" json:"type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
