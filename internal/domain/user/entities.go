package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrNotInvestor         = errors.New("only investors can allocate funds")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type AccountType string

const (
	TypeInvestor AccountType = "investor"
	TypeMSME     AccountType = "msme"
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID      string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email       string         `gorm:"size:255;index" json:"email"`
	Name        string         `gorm:"size:255" json:"name"`
	AccountType AccountType    `gorm:"type:enum('investor','msme');default:'investor'" json:"account_type"`
	Balance     float64        `gorm:"type:decimal(18,2)" json:"balance"`
	Verified    bool           `gorm:"default:false" json:"verified"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
