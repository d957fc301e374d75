package cashflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blezecon/skalebitz/internal/domain/deal"
	"github.com/blezecon/skalebitz/internal/domain/investment"
	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
)

const (
	StatusSettled     = "Settled"
	StatusSettledLate = "Settled late"
)

// RepaymentEvent is one dated cash receipt against a deal.
type RepaymentEvent struct {
	At     time.Time
	Amount float64
}

type ScheduleRow struct {
	Cycle   string    `json:"cycle"`
	Number  int       `json:"cycle_number"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	DueDate time.Time `json:"due_date"`
	Status  string    `json:"status"`
}

type Usecase struct {
	deals        deal.Repository
	investments  investment.Repository
	transactions ledgertx.Repository
}

func NewUsecase(d deal.Repository, i investment.Repository, t ledgertx.Repository) *Usecase {
	return &Usecase{deals: d, investments: i, transactions: t}
}

// BuildSchedule reconstructs the per-cycle repayment history of a deal from
// its raw transaction stream.
func (u *Usecase) BuildSchedule(ctx context.Context, dealID string) ([]ScheduleRow, error) {
	d, err := u.deals.GetVerifiedByDealID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	events, start, err := u.repaymentStream(ctx, d)
	if err != nil {
		return nil, err
	}
	return BuildRows(events, CadenceDays(d.RepaymentCadence), start), nil
}

// repaymentStream loads the deal's non-invest transactions plus the facility
// start date: the earliest investment timestamp, or the deal's creation date
// when nothing has been committed yet.
func (u *Usecase) repaymentStream(ctx context.Context, d *deal.Deal) ([]RepaymentEvent, time.Time, error) {
	txs, err := u.transactions.ListRepaymentsByDealID(ctx, d.DealID)
	if err != nil {
		return nil, time.Time{}, err
	}
	events := make([]RepaymentEvent, 0, len(txs))
	for _, t := range txs {
		events = append(events, RepaymentEvent{At: t.CreatedAt, Amount: t.Amount})
	}

	invs, err := u.investments.ListByDealID(ctx, d.DealID)
	if err != nil {
		return nil, time.Time{}, err
	}
	start := d.CreatedAt
	for _, inv := range invs {
		if !inv.CreatedAt.IsZero() && (start.IsZero() || inv.CreatedAt.Before(start)) {
			start = inv.CreatedAt
		}
	}
	return events, start, nil
}

// BuildRows groups events into cycle buckets. Only populated cycles are
// emitted; a cycle settles late when its last dated event lands after the
// cycle's due date.
func BuildRows(events []RepaymentEvent, cadenceDays int, start time.Time) []ScheduleRow {
	type bucket struct {
		amount float64
		lastAt time.Time
	}
	buckets := map[int]*bucket{}
	for i, ev := range events {
		n := AssignCycle(ev.At, start, cadenceDays, i)
		b := buckets[n]
		if b == nil {
			b = &bucket{}
			buckets[n] = b
		}
		b.amount += ev.Amount
		if ev.At.After(b.lastAt) {
			b.lastAt = ev.At
		}
	}

	rows := make([]ScheduleRow, 0, len(buckets))
	for n, b := range buckets {
		due := DueDate(start, cadenceDays, n)
		date := due
		if b.lastAt.After(due) {
			date = b.lastAt
		}
		status := StatusSettled
		if !b.lastAt.IsZero() && b.lastAt.After(due) {
			status = StatusSettledLate
		}
		rows = append(rows, ScheduleRow{
			Cycle:   fmt.Sprintf("Cycle %d", n),
			Number:  n,
			Amount:  b.amount,
			Date:    date,
			DueDate: due,
			Status:  status,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })
	return rows
}
