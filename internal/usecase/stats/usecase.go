package stats

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blezecon/skalebitz/internal/domain/deal"
	"github.com/blezecon/skalebitz/internal/domain/investment"
	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
)

const (
	featuredDealLimit = 3
	recentDealLimit   = 5
	activityLimit     = 10

	unspecifiedSector = "Unspecified"
)

type Usecase struct {
	deals        deal.Repository
	investments  investment.Repository
	transactions ledgertx.Repository
}

func NewUsecase(d deal.Repository, i investment.Repository, t ledgertx.Repository) *Usecase {
	return &Usecase{deals: d, investments: i, transactions: t}
}

// Overview aggregates the public marketplace numbers across verified deals.
type Overview struct {
	ActiveCapital float64     `json:"active_capital"`
	ActiveDeals   int         `json:"active_deals"`
	AverageYield  float64     `json:"average_yield"`
	LiveVolume    float64     `json:"live_volume"`
	FeaturedDeals []deal.Deal `json:"featured_deals"`
}

func isActive(d *deal.Deal) bool {
	return strings.EqualFold(d.Status, "active")
}

// ComputeOverview sums facility capital and deployed volume across the
// verified catalogue and picks the featured shortlist: the highest-yield
// active deals, or simply the newest deals when nothing is active.
func (u *Usecase) ComputeOverview(ctx context.Context) (*Overview, error) {
	deals, err := u.deals.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	out := &Overview{FeaturedDeals: []deal.Deal{}}
	var yieldSum float64
	var active []deal.Deal
	for _, d := range deals {
		out.LiveVolume += d.UtilizedAmount
		if isActive(&d) {
			out.ActiveCapital += d.FacilitySize
			out.ActiveDeals++
			yieldSum += d.TargetYield
			active = append(active, d)
		}
	}
	if out.ActiveDeals > 0 {
		out.AverageYield = round2(yieldSum / float64(out.ActiveDeals))
	}

	featured := active
	if len(featured) > 0 {
		sort.SliceStable(featured, func(i, j int) bool {
			if featured[i].TargetYield != featured[j].TargetYield {
				return featured[i].TargetYield > featured[j].TargetYield
			}
			if featured[i].FacilitySize != featured[j].FacilitySize {
				return featured[i].FacilitySize > featured[j].FacilitySize
			}
			return featured[i].CreatedAt.After(featured[j].CreatedAt)
		})
	} else {
		// ListVerified is already newest first
		featured = deals
	}
	if len(featured) > featuredDealLimit {
		featured = featured[:featuredDealLimit]
	}
	out.FeaturedDeals = append(out.FeaturedDeals, featured...)
	return out, nil
}

type AllocationSlice struct {
	Sector  string  `json:"sector"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type RecentDeal struct {
	InvestmentID string    `json:"investment_id"`
	DealID       string    `json:"deal_id"`
	Name         string    `json:"name"`
	Sector       string    `json:"sector"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivityEntry struct {
	TransactionID string    `json:"transaction_id"`
	InvestmentID  string    `json:"investment_id"`
	DealName      string    `json:"deal_name"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
}

type Dashboard struct {
	TotalInvested float64           `json:"total_invested"`
	AverageYield  float64           `json:"average_yield"`
	ActiveDeals   int               `json:"active_deals"`
	Allocation    []AllocationSlice `json:"allocation"`
	RecentDeals   []RecentDeal      `json:"recent_deals"`
	Activity      []ActivityEntry   `json:"activity"`
}

// ComputeDashboard rolls the investor's positions up into portfolio totals,
// an amount-weighted average yield, a sector allocation, and the most
// recent positions and ledger activity.
func (u *Usecase) ComputeDashboard(ctx context.Context, investorID string) (*Dashboard, error) {
	out := &Dashboard{
		Allocation:  []AllocationSlice{},
		RecentDeals: []RecentDeal{},
		Activity:    []ActivityEntry{},
	}
	if investorID == "" {
		return out, nil
	}

	invs, err := u.investments.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		return out, nil
	}

	dealByID, err := u.dealsFor(ctx, invs)
	if err != nil {
		return nil, err
	}

	var weightedYield float64
	allocation := map[string]float64{}
	dealIDs := map[string]struct{}{}
	for _, inv := range invs {
		d := dealByID[inv.DealID]
		sector := unspecifiedSector
		if d != nil {
			dealIDs[d.DealID] = struct{}{}
			weightedYield += inv.Amount * d.TargetYield
			if d.Sector != "" {
				sector = d.Sector
			}
		}
		out.TotalInvested += inv.Amount
		allocation[sector] += inv.Amount
	}
	if out.TotalInvested > 0 {
		out.AverageYield = round2(weightedYield / out.TotalInvested)
	}
	out.ActiveDeals = len(dealIDs)

	for sector, amount := range allocation {
		slice := AllocationSlice{Sector: sector, Amount: amount}
		if out.TotalInvested > 0 {
			slice.Percent = amount / out.TotalInvested * 100
		}
		out.Allocation = append(out.Allocation, slice)
	}
	sort.Slice(out.Allocation, func(i, j int) bool {
		if out.Allocation[i].Amount != out.Allocation[j].Amount {
			return out.Allocation[i].Amount > out.Allocation[j].Amount
		}
		return out.Allocation[i].Sector < out.Allocation[j].Sector
	})

	recent := invs
	if len(recent) > recentDealLimit {
		recent = recent[:recentDealLimit]
	}
	for _, inv := range recent {
		rd := RecentDeal{
			InvestmentID: inv.InvestmentID,
			DealID:       inv.DealID,
			Name:         "Deal",
			Sector:       unspecifiedSector,
			Amount:       inv.Amount,
			Status:       "Active",
			CreatedAt:    inv.CreatedAt,
		}
		if d := dealByID[inv.DealID]; d != nil {
			rd.Name = d.Name
			if d.Sector != "" {
				rd.Sector = d.Sector
			}
			if d.Status != "" {
				rd.Status = d.Status
			}
		}
		out.RecentDeals = append(out.RecentDeals, rd)
	}

	invIDs := make([]string, 0, len(invs))
	dealNameByInvestment := make(map[string]string, len(invs))
	for _, inv := range invs {
		invIDs = append(invIDs, inv.InvestmentID)
		name := "Deal"
		if d := dealByID[inv.DealID]; d != nil && d.Name != "" {
			name = d.Name
		}
		dealNameByInvestment[inv.InvestmentID] = name
	}
	txs, err := u.transactions.ListByInvestmentIDs(ctx, invIDs, activityLimit)
	if err != nil {
		return nil, err
	}
	for _, t := range txs {
		name := dealNameByInvestment[t.InvestmentID]
		if name == "" {
			name = "Deal"
		}
		out.Activity = append(out.Activity, ActivityEntry{
			TransactionID: t.TransactionID,
			InvestmentID:  t.InvestmentID,
			DealName:      name,
			Amount:        t.Amount,
			Type:          string(t.Type),
			CreatedAt:     t.CreatedAt,
		})
	}
	return out, nil
}

// InvestorDeal is one deal in the investor's portfolio with their
// cumulative position against it.
type InvestorDeal struct {
	DealID           string    `json:"deal_id"`
	Name             string    `json:"name"`
	Sector           string    `json:"sector"`
	FacilitySize     float64   `json:"facility_size"`
	TargetYield      float64   `json:"target_yield"`
	Status           string    `json:"status"`
	Location         string    `json:"location"`
	TenorMonths      int       `json:"tenor_months"`
	Risk             string    `json:"risk"`
	RepaymentCadence string    `json:"repayment_cadence"`
	Invested         float64   `json:"invested"`
	LastAllocationAt time.Time `json:"last_allocation_at"`
}

// ListInvestorDeals groups the investor's investments by deal, most
// recently funded first.
func (u *Usecase) ListInvestorDeals(ctx context.Context, investorID string) ([]InvestorDeal, error) {
	if investorID == "" {
		return []InvestorDeal{}, nil
	}
	invs, err := u.investments.ListByInvestorID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	dealByID, err := u.dealsFor(ctx, invs)
	if err != nil {
		return nil, err
	}

	byDeal := map[string]*InvestorDeal{}
	for _, inv := range invs {
		d := dealByID[inv.DealID]
		if d == nil {
			continue
		}
		entry := byDeal[d.DealID]
		if entry == nil {
			entry = &InvestorDeal{
				DealID:           d.DealID,
				Name:             d.Name,
				Sector:           d.Sector,
				FacilitySize:     d.FacilitySize,
				TargetYield:      d.TargetYield,
				Status:           d.Status,
				Location:         d.Location,
				TenorMonths:      d.TenorMonths,
				Risk:             d.Risk,
				RepaymentCadence: d.RepaymentCadence,
			}
			byDeal[d.DealID] = entry
		}
		entry.Invested += inv.Amount
		if inv.CreatedAt.After(entry.LastAllocationAt) {
			entry.LastAllocationAt = inv.CreatedAt
		}
	}

	out := make([]InvestorDeal, 0, len(byDeal))
	for _, entry := range byDeal {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastAllocationAt.After(out[j].LastAllocationAt)
	})
	return out, nil
}

// dealsFor batch-loads the distinct deals behind a set of investments.
func (u *Usecase) dealsFor(ctx context.Context, invs []investment.Investment) (map[string]*deal.Deal, error) {
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(invs))
	for _, inv := range invs {
		if _, ok := seen[inv.DealID]; ok {
			continue
		}
		seen[inv.DealID] = struct{}{}
		ids = append(ids, inv.DealID)
	}
	deals, err := u.deals.ListByDealIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*deal.Deal, len(deals))
	for i := range deals {
		byID[deals[i].DealID] = &deals[i]
	}
	return byID, nil
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
