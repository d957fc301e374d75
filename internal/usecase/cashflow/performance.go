package cashflow

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Performance bundles the derived risk metrics of one deal. MOIC and
// UtilizationPct are pointers: nil means the denominator made the metric
// meaningless (nothing invested / no facility size).
type Performance struct {
	DSODays         float64  `json:"dso_days"`
	DelinquencyRate float64  `json:"delinquency_rate"`
	MOIC            *float64 `json:"moic"`
	UtilizationPct  *int     `json:"utilization_pct"`
	TotalInvested   float64  `json:"total_invested"`
	TotalRepaid     float64  `json:"total_repaid"`
	RepaymentCount  int      `json:"repayment_count"`
}

// ComputePerformance derives the metrics for a deal from the same repayment
// stream the schedule builder reads.
func (u *Usecase) ComputePerformance(ctx context.Context, dealID string) (*Performance, error) {
	d, err := u.deals.GetVerifiedByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	events, start, err := u.repaymentStream(ctx, d)
	if err != nil {
		return nil, err
	}
	totalInvested, err := u.investments.SumAmountByDealID(ctx, d.DealID)
	if err != nil {
		return nil, err
	}
	p := ComputeMetrics(events, CadenceDays(d.RepaymentCadence), start, totalInvested, d.FacilitySize)
	return &p, nil
}

// DelayDays is how many whole days a repayment arrived after its cycle's
// due date; never negative, early payments count as zero.
func DelayDays(actual, due time.Time) int {
	if actual.IsZero() || due.IsZero() || !actual.After(due) {
		return 0
	}
	return int(math.Floor(float64(actual.Sub(due)) / float64(day)))
}

// ComputeMetrics is the pure core of the analytics. Events without a usable
// timestamp are excluded entirely: not on time, not late, and not counted
// in the repaid total either.
func ComputeMetrics(events []RepaymentEvent, cadenceDays int, start time.Time, totalInvested, facilitySize float64) Performance {
	var p Performance
	p.TotalInvested = totalInvested

	var delaySum, dated, late int
	for i, ev := range events {
		if ev.At.IsZero() {
			continue
		}
		p.TotalRepaid += ev.Amount
		dated++
		n := AssignCycle(ev.At, start, cadenceDays, i)
		d := DelayDays(ev.At, DueDate(start, cadenceDays, n))
		delaySum += d
		if d > 0 {
			late++
		}
	}
	p.RepaymentCount = dated

	if dated > 0 {
		p.DSODays = round1(float64(delaySum) / float64(dated))
		p.DelinquencyRate = round1(float64(late) / float64(dated) * 100)
	}
	if totalInvested > 0 {
		m := round2(p.TotalRepaid / totalInvested)
		p.MOIC = &m
	}
	if facilitySize > 0 {
		pct := int(decimal.NewFromFloat(totalInvested / facilitySize * 100).Round(0).IntPart())
		if pct > 100 {
			pct = 100
		}
		p.UtilizationPct = &pct
	}
	return p
}

func round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
