package usermock

import (
	"context"
	"errors"

	"github.com/blezecon/skalebitz/internal/domain/user"
)

// Ensure compile-time compliance
var _ user.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

type Repo struct {
	CreateFn        func(ctx context.Context, u *user.User) error
	GetByUserIDFn   func(ctx context.Context, userID string) (*user.User, error)
	AdjustBalanceFn func(ctx context.Context, userID string, delta float64) error
}

func (m *Repo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return errUnimplemented
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) AdjustBalance(ctx context.Context, userID string, delta float64) error {
	if m.AdjustBalanceFn != nil {
		return m.AdjustBalanceFn(ctx, userID, delta)
	}
	return errUnimplemented
}
