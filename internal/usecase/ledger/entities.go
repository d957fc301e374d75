package ledger

import (
	"errors"
	"time"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrMissingID     = errors.New("missing required id")
)

type CommitInput struct {
	DealID     string
	InvestorID string
	Amount     float64
	// ToUserID overrides the funds destination; empty falls back to the
	// deal's MSME owner, then to the investor themselves.
	ToUserID string
}

type RepaymentInput struct {
	InvestmentID string
	FromUserID   string
	ToUserID     string
	Amount       float64
	Type         string
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	DealID       string    `json:"deal_id"`
	InvestorID   string    `json:"investor_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type InvestorDTO struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
}

type CommitResult struct {
	Investment InvestmentDTO `json:"investment"`
	Investor   InvestorDTO   `json:"investor"`
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	InvestmentID  string    `json:"investment_id"`
	FromUserID    string    `json:"from_user_id"`
	ToUserID      string    `json:"to_user_id"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
}
