package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// AdjustBalance applies delta to the user's balance. Negative deltas
	// are conditional: they only apply while balance+delta >= 0, otherwise
	// ErrInsufficientBalance and no write.
	AdjustBalance(ctx context.Context, userID string, delta float64) error
}
