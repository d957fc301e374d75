package dealmock

import (
	"context"
	"errors"

	"github.com/blezecon/skalebitz/internal/domain/deal"
)

// Ensure compile-time compliance
var _ deal.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("dealmock: method not implemented")

// Repo is a function-backed mock that satisfies deal.Repository.
// Fill in the function fields you need in a test; unfilled ones fail loudly.
type Repo struct {
	CreateFn              func(ctx context.Context, d *deal.Deal) error
	GetByDealIDFn         func(ctx context.Context, dealID string) (*deal.Deal, error)
	GetVerifiedByDealIDFn func(ctx context.Context, dealID string) (*deal.Deal, error)
	ListVerifiedFn        func(ctx context.Context) ([]deal.Deal, error)
	ListByDealIDsFn       func(ctx context.Context, dealIDs []string) ([]deal.Deal, error)
	SetUtilizedAmountFn   func(ctx context.Context, dealID string, total float64) error
	ReserveFn             func(ctx context.Context, dealID string, amount float64) error
}

func (m *Repo) Create(ctx context.Context, d *deal.Deal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return errUnimplemented
}

func (m *Repo) GetByDealID(ctx context.Context, dealID string) (*deal.Deal, error) {
	if m.GetByDealIDFn != nil {
		return m.GetByDealIDFn(ctx, dealID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetVerifiedByDealID(ctx context.Context, dealID string) (*deal.Deal, error) {
	if m.GetVerifiedByDealIDFn != nil {
		return m.GetVerifiedByDealIDFn(ctx, dealID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListVerified(ctx context.Context) ([]deal.Deal, error) {
	if m.ListVerifiedFn != nil {
		return m.ListVerifiedFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByDealIDs(ctx context.Context, dealIDs []string) ([]deal.Deal, error) {
	if m.ListByDealIDsFn != nil {
		return m.ListByDealIDsFn(ctx, dealIDs)
	}
	return nil, errUnimplemented
}

func (m *Repo) SetUtilizedAmount(ctx context.Context, dealID string, total float64) error {
	if m.SetUtilizedAmountFn != nil {
		return m.SetUtilizedAmountFn(ctx, dealID, total)
	}
	return errUnimplemented
}

func (m *Repo) Reserve(ctx context.Context, dealID string, amount float64) error {
	if m.ReserveFn != nil {
		return m.ReserveFn(ctx, dealID, amount)
	}
	return errUnimplemented
}
