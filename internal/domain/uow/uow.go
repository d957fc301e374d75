package uow

import (
	"context"
	"log"

	"github.com/blezecon/skalebitz/internal/domain/deal"
	"github.com/blezecon/skalebitz/internal/domain/investment"
	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
	"github.com/blezecon/skalebitz/internal/domain/user"
)

type Repos struct {
	Deals        deal.Repository
	Users        user.Repository
	Investments  investment.Repository
	Transactions ledgertx.Repository
}

// AtomicWriter groups the bookkeeping writes of one ledger operation.
// Two implementations exist behind this interface, selected once per
// deployment by a capability probe: a real store transaction, and a
// sequential fallback that runs registered Undo steps on failure when
// the deployment cannot do multi-document transactions.
type AtomicWriter interface {
	Write(ctx context.Context, fn func(r Repos, undo *Undo) error) error
}

// Undo collects best-effort compensation steps for the sequential write
// path. The transactional writer never runs them; rollback covers it.
type Undo struct {
	steps []func(ctx context.Context, r Repos) error
}

// Add registers a compensation step for the most recent successful write.
func (u *Undo) Add(step func(ctx context.Context, r Repos) error) {
	u.steps = append(u.steps, step)
}

// Run executes the registered steps in reverse order. Failures are logged
// and swallowed: compensation must never mask the primary error.
func (u *Undo) Run(ctx context.Context, r Repos) {
	for i := len(u.steps) - 1; i >= 0; i-- {
		if err := u.steps[i](ctx, r); err != nil {
			log.Printf("uow: compensation step %d failed: %v", i, err)
		}
	}
}
