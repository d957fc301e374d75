package deal

import (
	"context"
	"time"

	dealDomain "github.com/blezecon/skalebitz/internal/domain/deal"
	"github.com/blezecon/skalebitz/internal/domain/investment"
	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
	"github.com/blezecon/skalebitz/pkg/id"
)

const activityLogLimit = 50

// DefaultTenorMonths backstops deals submitted without a usable tenor.
const DefaultTenorMonths = 6

type Usecase struct {
	deals        dealDomain.Repository
	investments  investment.Repository
	transactions ledgertx.Repository
}

func NewUsecase(d dealDomain.Repository, i investment.Repository, t ledgertx.Repository) *Usecase {
	return &Usecase{deals: d, investments: i, transactions: t}
}

type CreateDealInput struct {
	MsmeUserID       string
	Name             string
	Sector           string
	FacilitySize     float64
	TargetYield      float64
	Status           string
	Location         string
	TenorMonths      int
	Risk             string
	RepaymentCadence string
}

// Create records an MSME deal submission. Field defaults mirror the intake
// form: unnamed deals become a generic onboarding entry, and submissions go
// live (verified) immediately.
func (u *Usecase) Create(ctx context.Context, in CreateDealInput) (*dealDomain.Deal, error) {
	if in.MsmeUserID == "" {
		return nil, dealDomain.ErrNotFound
	}
	d := &dealDomain.Deal{
		DealID:           id.NewID32(),
		Name:             in.Name,
		Sector:           in.Sector,
		MsmeUserID:       in.MsmeUserID,
		FacilitySize:     in.FacilitySize,
		TargetYield:      in.TargetYield,
		Status:           in.Status,
		Location:         in.Location,
		TenorMonths:      in.TenorMonths,
		Risk:             in.Risk,
		RepaymentCadence: in.RepaymentCadence,
		Verified:         true,
	}
	if d.Name == "" {
		d.Name = "MSME Deal"
	}
	if d.Sector == "" {
		d.Sector = "MSME onboarding"
	}
	if d.Status == "" {
		d.Status = "Active"
	}
	if d.Risk == "" {
		d.Risk = "On track"
	}
	if d.TenorMonths <= 0 {
		d.TenorMonths = DefaultTenorMonths
	}
	if err := u.deals.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) List(ctx context.Context) ([]dealDomain.Deal, error) {
	return u.deals.ListVerified(ctx)
}

func (u *Usecase) Get(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	return u.deals.GetVerifiedByDealID(ctx, dealID)
}

type DealInvestments struct {
	Deal        *dealDomain.Deal        `json:"deal"`
	Investments []investment.Investment `json:"investments"`
	Total       float64                 `json:"total"`
}

func (u *Usecase) Investments(ctx context.Context, dealID string) (*DealInvestments, error) {
	d, err := u.deals.GetVerifiedByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	invs, err := u.investments.ListByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	out := &DealInvestments{Deal: d, Investments: invs}
	for _, inv := range invs {
		out.Total += inv.Amount
	}
	return out, nil
}

type LogEntry struct {
	TransactionID string    `json:"transaction_id"`
	InvestmentID  string    `json:"investment_id"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Direction     string    `json:"direction"`
	CreatedAt     time.Time `json:"created_at"`
}

// Logs returns the user's recent ledger activity, newest first, with the
// direction resolved from the user's side of each transaction.
func (u *Usecase) Logs(ctx context.Context, userID string) ([]LogEntry, error) {
	txs, err := u.transactions.ListByUserID(ctx, userID, activityLogLimit)
	if err != nil {
		return nil, err
	}
	logs := make([]LogEntry, 0, len(txs))
	for _, t := range txs {
		dir := "incoming"
		if t.FromUserID == userID {
			dir = "outgoing"
		}
		logs = append(logs, LogEntry{
			TransactionID: t.TransactionID,
			InvestmentID:  t.InvestmentID,
			Amount:        t.Amount,
			Type:          string(t.Type),
			Direction:     dir,
			CreatedAt:     t.CreatedAt,
		})
	}
	return logs, nil
}
