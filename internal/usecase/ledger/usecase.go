package ledger

import (
	"context"
	"math"
	"time"

	"github.com/blezecon/skalebitz/internal/domain/investment"
	"github.com/blezecon/skalebitz/internal/domain/ledgertx"
	"github.com/blezecon/skalebitz/internal/domain/uow"
	"github.com/blezecon/skalebitz/internal/domain/user"
	"github.com/blezecon/skalebitz/pkg/id"
)

type Usecase struct {
	repos  uow.Repos
	writer uow.AtomicWriter
}

// NewUsecase: plain repos for reads and the capacity CAS, a writer for the
// grouped bookkeeping writes.
func NewUsecase(r uow.Repos, w uow.AtomicWriter) *Usecase {
	return &Usecase{repos: r, writer: w}
}

func validAmount(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && a > 0
}

// Commit moves amount from the investor's balance into the deal's utilized
// capacity and writes the paired Investment + invest Transaction.
//
// The capacity reservation is a single conditional UPDATE and runs outside
// the writer on purpose: it is atomic on its own, and it is the only
// admission control under concurrent commits. The writer only protects the
// bookkeeping (debit, investment, transaction) against partial writes.
func (u *Usecase) Commit(ctx context.Context, in CommitInput) (*CommitResult, error) {
	if in.DealID == "" || in.InvestorID == "" {
		return nil, ErrMissingID
	}
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}

	investor, err := u.repos.Users.GetByUserID(ctx, in.InvestorID)
	if err != nil {
		return nil, err
	}
	if investor.AccountType != user.TypeInvestor {
		return nil, user.ErrNotInvestor
	}
	if investor.Balance < in.Amount {
		return nil, user.ErrInsufficientBalance
	}

	d, err := u.repos.Deals.GetVerifiedByDealID(ctx, in.DealID)
	if err != nil {
		return nil, err
	}

	// Refresh the cached utilization from the Investment aggregate before
	// checking capacity. The cache can sit high after a failed bookkeeping
	// write; this heals the drift on the next attempt.
	total, err := u.repos.Investments.SumAmountByDealID(ctx, d.DealID)
	if err != nil {
		return nil, err
	}
	if err := u.repos.Deals.SetUtilizedAmount(ctx, d.DealID, total); err != nil {
		return nil, err
	}
	if err := u.repos.Deals.Reserve(ctx, d.DealID, in.Amount); err != nil {
		return nil, err
	}

	toUserID := in.ToUserID
	if toUserID == "" {
		toUserID = d.MsmeUserID
	}
	if toUserID == "" {
		toUserID = in.InvestorID
	}

	inv := &investment.Investment{
		InvestmentID: id.NewID32(),
		DealID:       d.DealID,
		InvestorID:   in.InvestorID,
		Amount:       in.Amount,
		Status:       investment.StatusActive,
	}

	err = u.writer.Write(ctx, func(r uow.Repos, undo *uow.Undo) error {
		if err := r.Users.AdjustBalance(ctx, in.InvestorID, -in.Amount); err != nil {
			return err
		}
		undo.Add(func(ctx context.Context, r uow.Repos) error {
			return r.Users.AdjustBalance(ctx, in.InvestorID, in.Amount)
		})

		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}
		undo.Add(func(ctx context.Context, r uow.Repos) error {
			return r.Investments.DeleteByInvestmentID(ctx, inv.InvestmentID)
		})

		return r.Transactions.Create(ctx, &ledgertx.Transaction{
			TransactionID: id.NewID32(),
			InvestmentID:  inv.InvestmentID,
			FromUserID:    in.InvestorID,
			ToUserID:      toUserID,
			Amount:        in.Amount,
			Type:          ledgertx.TypeInvest,
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := u.repos.Users.GetByUserID(ctx, in.InvestorID)
	if err != nil {
		// The commit itself succeeded; fall back to the pre-read snapshot.
		updated = investor
		updated.Balance = investor.Balance - in.Amount
	}

	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	return &CommitResult{
		Investment: InvestmentDTO{
			InvestmentID: inv.InvestmentID,
			DealID:       inv.DealID,
			InvestorID:   inv.InvestorID,
			Amount:       inv.Amount,
			Status:       string(inv.Status),
			CreatedAt:    inv.CreatedAt,
		},
		Investor: InvestorDTO{
			UserID:      updated.UserID,
			Name:        updated.Name,
			AccountType: string(updated.AccountType),
			Balance:     updated.Balance,
		},
	}, nil
}

// RecordRepayment writes a single post-investment cashflow (repayment or
// refund). Same writer as Commit; with one write there is nothing to
// compensate, so the fallback path degrades to a direct insert.
func (u *Usecase) RecordRepayment(ctx context.Context, in RepaymentInput) (*TransactionDTO, error) {
	if in.InvestmentID == "" || in.FromUserID == "" || in.ToUserID == "" {
		return nil, ErrMissingID
	}
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	txType := ledgertx.Type(in.Type)
	if in.Type == "" {
		txType = ledgertx.TypeRepayment
	}
	if !ledgertx.IsRepaymentType(txType) {
		return nil, ledgertx.ErrInvalidType
	}

	if _, err := u.repos.Investments.GetByInvestmentID(ctx, in.InvestmentID); err != nil {
		return nil, err
	}

	t := &ledgertx.Transaction{
		TransactionID: id.NewID32(),
		InvestmentID:  in.InvestmentID,
		FromUserID:    in.FromUserID,
		ToUserID:      in.ToUserID,
		Amount:        in.Amount,
		Type:          txType,
	}
	err := u.writer.Write(ctx, func(r uow.Repos, undo *uow.Undo) error {
		return r.Transactions.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return &TransactionDTO{
		TransactionID: t.TransactionID,
		InvestmentID:  t.InvestmentID,
		FromUserID:    t.FromUserID,
		ToUserID:      t.ToUserID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		CreatedAt:     t.CreatedAt,
	}, nil
}
