package mysql

import (
	"context"
	"log"

	"github.com/blezecon/skalebitz/internal/domain/uow"

	"gorm.io/gorm"
)

func reposFor(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Deals:        &DealRepository{db: db},
		Users:        &UserRepository{db: db},
		Investments:  &InvestmentRepository{db: db},
		Transactions: &TransactionRepository{db: db},
	}
}

// NewRepos builds the plain (non-transactional) repository bundle.
func NewRepos(db *gorm.DB) uow.Repos { return reposFor(db) }

// TxWriter groups writes in one store transaction. Undo steps registered by
// the caller are ignored: rollback already covers partial failure.
type TxWriter struct{ db *gorm.DB }

func NewTxWriter(db *gorm.DB) *TxWriter { return &TxWriter{db: db} }

func (w *TxWriter) Write(ctx context.Context, fn func(r uow.Repos, undo *uow.Undo) error) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx), &uow.Undo{})
	})
}

// SeqWriter is the fallback for deployments without multi-statement
// transaction support. Writes run in order against the plain handle; on
// failure the Undo steps registered so far run in reverse as best-effort
// compensation. The primary error is always the one returned.
type SeqWriter struct{ db *gorm.DB }

func NewSeqWriter(db *gorm.DB) *SeqWriter { return &SeqWriter{db: db} }

func (w *SeqWriter) Write(ctx context.Context, fn func(r uow.Repos, undo *uow.Undo) error) error {
	r := reposFor(w.db.WithContext(ctx))
	undo := &uow.Undo{}
	if err := fn(r, undo); err != nil {
		undo.Run(ctx, r)
		return err
	}
	return nil
}

// DetectAtomicWriter probes the deployment once for transaction support and
// picks the write protocol for the process lifetime. A one-time switch, not
// a per-call retry.
func DetectAtomicWriter(db *gorm.DB) uow.AtomicWriter {
	err := db.Transaction(func(tx *gorm.DB) error { return nil })
	if err != nil {
		log.Printf("mysql: store transactions unavailable, using sequential writes with compensation: %v", err)
		return NewSeqWriter(db)
	}
	return NewTxWriter(db)
}
