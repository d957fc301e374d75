package uowmock

import (
	"context"

	"github.com/blezecon/skalebitz/internal/domain/uow"
)

// Ensure compile-time compliance
var (
	_ uow.AtomicWriter = (*TxWriter)(nil)
	_ uow.AtomicWriter = (*SeqWriter)(nil)
)

// TxWriter behaves like the transactional writer: it runs fn against the
// given repos and never executes undo steps.
type TxWriter struct{ Repos uow.Repos }

func (w *TxWriter) Write(ctx context.Context, fn func(r uow.Repos, undo *uow.Undo) error) error {
	return fn(w.Repos, &uow.Undo{})
}

// SeqWriter behaves like the fallback writer: on error it runs the undo
// steps registered so far, in reverse, and still returns the primary error.
type SeqWriter struct{ Repos uow.Repos }

func (w *SeqWriter) Write(ctx context.Context, fn func(r uow.Repos, undo *uow.Undo) error) error {
	undo := &uow.Undo{}
	if err := fn(w.Repos, undo); err != nil {
		undo.Run(ctx, w.Repos)
		return err
	}
	return nil
}
