package mysql

import (
	"context"

	txDomain "github.com/blezecon/skalebitz/internal/domain/ledgertx"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListRepaymentsByDealID(ctx context.Context, dealID string) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Joins("JOIN investments ON investments.investment_id = transactions.investment_id AND investments.deleted_at IS NULL").
		Where("investments.deal_id = ? AND transactions.type IN ?", dealID, []txDomain.Type{txDomain.TypeRepayment, txDomain.TypeRefund}).
		Order("transactions.created_at ASC, transactions.id ASC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByInvestmentIDs(ctx context.Context, investmentIDs []string, limit int) ([]txDomain.Transaction, error) {
	if len(investmentIDs) == 0 {
		return nil, nil
	}
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("investment_id IN ?", investmentIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
