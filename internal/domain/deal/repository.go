package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	// GetVerifiedByDealID only matches deals with verified = true.
	GetVerifiedByDealID(ctx context.Context, dealID string) (*Deal, error)
	ListVerified(ctx context.Context) ([]Deal, error)
	// ListByDealIDs batch-loads deals for cross-aggregate reads. Missing
	// ids are simply absent from the result.
	ListByDealIDs(ctx context.Context, dealIDs []string) ([]Deal, error)

	// SetUtilizedAmount overwrites the cached utilization projection with a
	// value recomputed from the Investment aggregate.
	SetUtilizedAmount(ctx context.Context, dealID string, total float64) error
	// Reserve performs the single-statement conditional increment of
	// utilized_amount by amount, admitting the write only while
	// utilized_amount + amount <= facility_size on a verified deal.
	// Zero rows affected means ErrCapacityExceeded.
	Reserve(ctx context.Context, dealID string, amount float64) error
}
