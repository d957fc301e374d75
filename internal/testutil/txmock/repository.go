package txmock

import (
	"context"
	"errors"

	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
)

// Ensure compile-time compliance
var _ ledgertx.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("txmock: method not implemented")

type Repo struct {
	CreateFn                 func(ctx context.Context, t *ledgertx.Transaction) error
	ListRepaymentsByDealIDFn func(ctx context.Context, dealID string) ([]ledgertx.Transaction, error)
	ListByUserIDFn           func(ctx context.Context, userID string, limit int) ([]ledgertx.Transaction, error)
	ListByInvestmentIDsFn    func(ctx context.Context, investmentIDs []string, limit int) ([]ledgertx.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *ledgertx.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return errUnimplemented
}

func (m *Repo) ListRepaymentsByDealID(ctx context.Context, dealID string) ([]ledgertx.Transaction, error) {
	if m.ListRepaymentsByDealIDFn != nil {
		return m.ListRepaymentsByDealIDFn(ctx, dealID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByUserID(ctx context.Context, userID string, limit int) ([]ledgertx.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByInvestmentIDs(ctx context.Context, investmentIDs []string, limit int) ([]ledgertx.Transaction, error) {
	if m.ListByInvestmentIDsFn != nil {
		return m.ListByInvestmentIDsFn(ctx, investmentIDs, limit)
	}
	return nil, errUnimplemented
}
