package investmentmock

import (
	"context"
	"errors"

	"github.com/blezecon/skalebitz/internal/domain/investment"
)

// Ensure compile-time compliance
var _ investment.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("investmentmock: method not implemented")

type Repo struct {
	CreateFn               func(ctx context.Context, i *investment.Investment) error
	GetByInvestmentIDFn    func(ctx context.Context, investmentID string) (*investment.Investment, error)
	ListByDealIDFn         func(ctx context.Context, dealID string) ([]investment.Investment, error)
	ListByInvestorIDFn     func(ctx context.Context, investorID string) ([]investment.Investment, error)
	SumAmountByDealIDFn    func(ctx context.Context, dealID string) (float64, error)
	DeleteByInvestmentIDFn func(ctx context.Context, investmentID string) error
}

func (m *Repo) Create(ctx context.Context, i *investment.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return errUnimplemented
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*investment.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByDealID(ctx context.Context, dealID string) ([]investment.Investment, error) {
	if m.ListByDealIDFn != nil {
		return m.ListByDealIDFn(ctx, dealID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByInvestorID(ctx context.Context, investorID string) ([]investment.Investment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SumAmountByDealID(ctx context.Context, dealID string) (float64, error) {
	if m.SumAmountByDealIDFn != nil {
		return m.SumAmountByDealIDFn(ctx, dealID)
	}
	return 0, errUnimplemented
}

func (m *Repo) DeleteByInvestmentID(ctx context.Context, investmentID string) error {
	if m.DeleteByInvestmentIDFn != nil {
		return m.DeleteByInvestmentIDFn(ctx, investmentID)
	}
	return errUnimplemented
}
