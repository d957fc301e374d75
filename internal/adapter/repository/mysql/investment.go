package mysql

import (
	"context"
	"errors"

	invDomain "github.com/blezecon/skalebitz/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, invDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InvestmentRepository) ListByDealID(ctx context.Context, dealID string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) SumAmountByDealID(ctx context.Context, dealID string) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Where("deal_id = ?", dealID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *InvestmentRepository) DeleteByInvestmentID(ctx context.Context, investmentID string) error {
	return r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Delete(&invDomain.Investment{}).Error
}
