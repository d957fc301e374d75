package mysql

import (
	"context"
	"errors"

	dealDomain "github.com/blezecon/skalebitz/internal/domain/deal"

	"gorm.io/gorm"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, dealDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DealRepository) GetVerifiedByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ? AND verified = ?", dealID, true).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, dealDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DealRepository) ListVerified(ctx context.Context) ([]dealDomain.Deal, error) {
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("verified = ?", true).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DealRepository) ListByDealIDs(ctx context.Context, dealIDs []string) ([]dealDomain.Deal, error) {
	if len(dealIDs) == 0 {
		return nil, nil
	}
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("deal_id IN ?", dealIDs).
		Find(&out)
	return out, res.Error
}

func (r *DealRepository) SetUtilizedAmount(ctx context.Context, dealID string, total float64) error {
	return r.db.WithContext(ctx).
		Model(&dealDomain.Deal{}).
		Where("deal_id = ?", dealID).
		Update("utilized_amount", total).Error
}

// Reserve is the sole admission arbiter for deal capacity. It must stay a
// single conditional UPDATE: concurrent commits against the same deal
// serialize on this row write, never on a read-then-write in Go.
func (r *DealRepository) Reserve(ctx context.Context, dealID string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&dealDomain.Deal{}).
		Where("deal_id = ? AND verified = ? AND utilized_amount + ? <= facility_size", dealID, true, amount).
		Update("utilized_amount", gorm.Expr("utilized_amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return dealDomain.ErrCapacityExceeded
	}
	return nil
}
