package deal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("deal not found")
	// ErrCapacityExceeded is returned when the conditional utilization
	// increment admits zero rows: the commit would push utilized_amount
	// past facility_size.
	ErrCapacityExceeded = errors.New("investment exceeds facility size")
)

type Deal struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	DealID     string `gorm:"size:32;uniqueIndex:ux_deals_deal_id_active" json:"deal_id"`
	Name       string `gorm:"size:255" json:"name"`
	Sector     string `gorm:"size:255" json:"sector"`
	MsmeUserID string `gorm:"size:32;index:idx_deals_msme_active" json:"msme_user_id"`
	// FacilitySize is the aggregate capital ceiling for the deal.
	FacilitySize float64 `gorm:"type:decimal(18,2)" json:"facility_size"`
	// UtilizedAmount is a cached projection of SUM(investments.amount).
	// It is reconciled from the aggregate before every capacity check and
	// mutated only by the conditional increment in Reserve.
	UtilizedAmount   float64        `gorm:"type:decimal(18,2)" json:"utilized_amount"`
	TargetYield      float64        `gorm:"type:decimal(6,2)" json:"target_yield"`
	Status           string         `gorm:"size:32;default:'Active'" json:"status"`
	RepaymentCadence string         `gorm:"size:64" json:"repayment_cadence"`
	TenorMonths      int            `json:"tenor_months"`
	Risk             string         `gorm:"size:64;default:'On track'" json:"risk"`
	Location         string         `gorm:"size:255" json:"location"`
	Verified         bool           `gorm:"default:false;index" json:"verified"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Deal) TableName() string { return "deals" }
