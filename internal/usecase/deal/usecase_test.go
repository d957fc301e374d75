package deal

import (
	"context"
	"errors"
	"testing"
	"time"

	dealDomain "github.com/blezecon/skalebitz/internal/domain/deal"
	invDomain "github.com/blezecon/skalebitz/internal/domain/investment"
	txDomain "github.com/blezecon/skalebitz/internal/domain/ledgertx"
	"github.com/blezecon/skalebitz/internal/testutil/dealmock"
	"github.com/blezecon/skalebitz/internal/testutil/investmentmock"
	"github.com/blezecon/skalebitz/internal/testutil/txmock"
)

func hex32(ch byte) string {
	b := make([]byte, 32)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

func TestCreate_Defaults(t *testing.T) {
	var created *dealDomain.Deal
	u := NewUsecase(&dealmock.Repo{
		CreateFn: func(ctx context.Context, d *dealDomain.Deal) error {
			created = d
			return nil
		},
	}, &investmentmock.Repo{}, &txmock.Repo{})

	got, err := u.Create(context.Background(), CreateDealInput{
		MsmeUserID:   hex32('e'),
		FacilitySize: 50000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil || got != created {
		t.Fatal("deal not handed to the repository")
	}
	if got.Name != "MSME Deal" || got.Sector != "MSME onboarding" || got.Status != "Active" || got.Risk != "On track" {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if !got.Verified {
		t.Fatal("submissions go live verified")
	}
	if got.TenorMonths != DefaultTenorMonths {
		t.Fatalf("tenor = %d, want default %d", got.TenorMonths, DefaultTenorMonths)
	}
	if len(got.DealID) != 32 {
		t.Fatalf("deal id %q, want generated 32-hex", got.DealID)
	}
}

func TestCreate_KeepsProvidedFields(t *testing.T) {
	u := NewUsecase(&dealmock.Repo{
		CreateFn: func(ctx context.Context, d *dealDomain.Deal) error { return nil },
	}, &investmentmock.Repo{}, &txmock.Repo{})

	got, err := u.Create(context.Background(), CreateDealInput{
		MsmeUserID:       hex32('e'),
		Name:             "Warung Ibu Sari",
		Sector:           "F&B",
		FacilitySize:     25000,
		Status:           "Funding",
		Risk:             "Watchlist",
		RepaymentCadence: "Weekly",
		TenorMonths:      18,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Name != "Warung Ibu Sari" || got.Status != "Funding" || got.Risk != "Watchlist" {
		t.Fatalf("provided fields overwritten: %+v", got)
	}
	if got.TenorMonths != 18 {
		t.Fatalf("tenor = %d, want the submitted 18", got.TenorMonths)
	}
}

func TestCreate_RequiresOwner(t *testing.T) {
	u := NewUsecase(&dealmock.Repo{}, &investmentmock.Repo{}, &txmock.Repo{})
	if _, err := u.Create(context.Background(), CreateDealInput{FacilitySize: 100}); !errors.Is(err, dealDomain.ErrNotFound) {
		t.Fatalf("err = %v, want not found for a missing owner", err)
	}
}

func TestInvestments_TotalsDeployedCapital(t *testing.T) {
	dealID := hex32('d')
	u := NewUsecase(&dealmock.Repo{
		GetVerifiedByDealIDFn: func(ctx context.Context, id string) (*dealDomain.Deal, error) {
			return &dealDomain.Deal{DealID: dealID, Verified: true}, nil
		},
	}, &investmentmock.Repo{
		ListByDealIDFn: func(ctx context.Context, id string) ([]invDomain.Investment, error) {
			return []invDomain.Investment{
				{InvestmentID: hex32('1'), Amount: 1200},
				{InvestmentID: hex32('2'), Amount: 800.50},
			}, nil
		},
	}, &txmock.Repo{})

	out, err := u.Investments(context.Background(), dealID)
	if err != nil {
		t.Fatalf("Investments: %v", err)
	}
	if out.Total != 2000.50 {
		t.Fatalf("total = %v, want 2000.50", out.Total)
	}
	if out.Deal.DealID != dealID || len(out.Investments) != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestInvestments_DealNotFound(t *testing.T) {
	u := NewUsecase(&dealmock.Repo{
		GetVerifiedByDealIDFn: func(ctx context.Context, id string) (*dealDomain.Deal, error) {
			return nil, dealDomain.ErrNotFound
		},
	}, &investmentmock.Repo{}, &txmock.Repo{})

	if _, err := u.Investments(context.Background(), hex32('d')); !errors.Is(err, dealDomain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestLogs_DirectionAndLimit(t *testing.T) {
	userID := hex32('a')
	var gotLimit int
	u := NewUsecase(&dealmock.Repo{}, &investmentmock.Repo{}, &txmock.Repo{
		ListByUserIDFn: func(ctx context.Context, id string, limit int) ([]txDomain.Transaction, error) {
			gotLimit = limit
			return []txDomain.Transaction{
				{TransactionID: hex32('1'), FromUserID: userID, ToUserID: hex32('e'), Type: txDomain.TypeInvest, Amount: 100, CreatedAt: time.Now()},
				{TransactionID: hex32('2'), FromUserID: hex32('e'), ToUserID: userID, Type: txDomain.TypeRepayment, Amount: 40, CreatedAt: time.Now()},
			}, nil
		},
	})

	logs, err := u.Logs(context.Background(), userID)
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if gotLimit != activityLogLimit {
		t.Fatalf("limit = %d, want %d", gotLimit, activityLogLimit)
	}
	if logs[0].Direction != "outgoing" || logs[1].Direction != "incoming" {
		t.Fatalf("directions = [%s %s]", logs[0].Direction, logs[1].Direction)
	}
	if logs[1].Type != string(txDomain.TypeRepayment) {
		t.Fatalf("type = %s", logs[1].Type)
	}
}
