package mysql

import (
	"context"
	"strings"
	"testing"
	"time"

	dealDomain "github.com/blezecon/skalebitz/internal/domain/deal"
	invDomain "github.com/blezecon/skalebitz/internal/domain/investment"
	userDomain "github.com/blezecon/skalebitz/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type userSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	UserID      string         `gorm:"size:32;column:user_id"`
	Email       string         `gorm:"column:email"`
	Name        string         `gorm:"column:name"`
	AccountType string         `gorm:"type:text;column:account_type"` // ← no enum
	Balance     float64        `gorm:"column:balance"`
	Verified    bool           `gorm:"column:verified"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type dealSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	DealID           string         `gorm:"size:32;column:deal_id"`
	Name             string         `gorm:"column:name"`
	Sector           string         `gorm:"column:sector"`
	MsmeUserID       string         `gorm:"size:32;column:msme_user_id"`
	FacilitySize     float64        `gorm:"column:facility_size"`
	UtilizedAmount   float64        `gorm:"column:utilized_amount"`
	TargetYield      float64        `gorm:"column:target_yield"`
	Status           string         `gorm:"column:status"`
	RepaymentCadence string         `gorm:"column:repayment_cadence"`
	TenorMonths      int            `gorm:"column:tenor_months"`
	Risk             string         `gorm:"column:risk"`
	Location         string         `gorm:"column:location"`
	Verified         bool           `gorm:"column:verified"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (dealSQLite) TableName() string { return "deals" }

type investmentSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	InvestmentID string         `gorm:"size:32;column:investment_id"`
	DealID       string         `gorm:"size:32;column:deal_id"`
	InvestorID   string         `gorm:"size:32;column:investor_id"`
	Amount       float64        `gorm:"column:amount"`
	Status       string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type transactionSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:32;column:transaction_id"`
	InvestmentID  string    `gorm:"size:32;column:investment_id"`
	FromUserID    string    `gorm:"size:32;column:from_user_id"`
	ToUserID      string    `gorm:"size:32;column:to_user_id"`
	Amount        float64   `gorm:"column:amount"`
	Type          string    `gorm:"type:text;column:type"` // ← no enum
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &dealSQLite{}, &investmentSQLite{}, &transactionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func hex32(ch byte) string { return strings.Repeat(string(ch), 32) }

func seedInvestor(t *testing.T, db *gorm.DB, userID string, balance float64) {
	t.Helper()
	repo := NewUserRepository(db)
	u := &userDomain.User{
		UserID:      userID,
		Name:        "Investor",
		AccountType: userDomain.TypeInvestor,
		Balance:     balance,
		Verified:    true,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed investor: %v", err)
	}
}

func seedDeal(t *testing.T, db *gorm.DB, dealID string, facility float64, verified bool) {
	t.Helper()
	repo := NewDealRepository(db)
	d := &dealDomain.Deal{
		DealID:       dealID,
		Name:         "Working capital facility",
		MsmeUserID:   hex32('e'),
		FacilitySize: facility,
		Verified:     verified,
	}
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("seed deal: %v", err)
	}
}

func seedInvestment(t *testing.T, db *gorm.DB, investmentID, dealID string, amount float64, at time.Time) {
	t.Helper()
	repo := NewInvestmentRepository(db)
	i := &invDomain.Investment{
		InvestmentID: investmentID,
		DealID:       dealID,
		InvestorID:   hex32('a'),
		Amount:       amount,
		Status:       invDomain.StatusActive,
		CreatedAt:    at,
	}
	if err := repo.Create(context.Background(), i); err != nil {
		t.Fatalf("seed investment: %v", err)
	}
}
