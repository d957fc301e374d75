package mysql

import (
	"context"
	"errors"

	userDomain "github.com/blezecon/skalebitz/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

// AdjustBalance applies delta in one conditional UPDATE. Debits only admit
// while the resulting balance stays non-negative, so a balance can never be
// driven below zero by concurrent ledger operations.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID string, delta float64) error {
	q := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID)
	if delta < 0 {
		q = q.Where("balance + ? >= 0", delta)
	}
	res := q.Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if delta < 0 {
			return userDomain.ErrInsufficientBalance
		}
		return userDomain.ErrNotFound
	}
	return nil
}
