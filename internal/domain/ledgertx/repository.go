package ledgertx

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	// ListRepaymentsByDealID returns the deal's non-invest transactions
	// (repayment + refund) joined through its investments, oldest first.
	ListRepaymentsByDealID(ctx context.Context, dealID string) ([]Transaction, error)
	// ListByUserID returns transactions where the user is sender or
	// receiver, newest first, capped at limit.
	ListByUserID(ctx context.Context, userID string, limit int) ([]Transaction, error)
	// ListByInvestmentIDs returns transactions against any of the given
	// investments, newest first, capped at limit.
	ListByInvestmentIDs(ctx context.Context, investmentIDs []string, limit int) ([]Transaction, error)
}
