package investment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("investment not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Investment is one capital commitment by an investor against a deal.
// DealID, InvestorID and Amount are immutable after creation.
type Investment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	InvestmentID string         `gorm:"size:32;uniqueIndex:ux_investments_investment_id_active" json:"investment_id"`
	DealID       string         `gorm:"size:32;index:idx_investments_deal" json:"deal_id"`
	InvestorID   string         `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	Amount       float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Status       Status         `gorm:"type:enum('active','completed','cancelled');default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }
