package investment

import "context"

type Repository interface {
	Create(ctx context.Context, i *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	ListByDealID(ctx context.Context, dealID string) ([]Investment, error)
	ListByInvestorID(ctx context.Context, investorID string) ([]Investment, error)
	// SumAmountByDealID recomputes the deal's true utilization from the
	// Investment aggregate.
	SumAmountByDealID(ctx context.Context, dealID string) (float64, error)
	// DeleteByInvestmentID exists only for the compensating rollback on the
	// non-transactional write path.
	DeleteByInvestmentID(ctx context.Context, investmentID string) error
}
