package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card statuses
const (
	CardStatusActive  = "ACTIVE"
	CardStatusBlocked = "BLOCKED"
	CardStatusExpired = "EXPIRED"
)

// Card represents a virtual payment card issued to a user.
// Number holds the encrypted card number and is never serialized;
// MaskedNumber is the only display form that leaves the system.
type Card struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	Number         string          `json:"-" gorm:"column:number_encrypted;not null"`
	MaskedNumber   string          `json:"masked_number" gorm:"not null"`
	Owner          string          `json:"owner" gorm:"not null"`
	ExpiryDate     time.Time       `json:"expiry_date" gorm:"type:date;not null"`
	Status         string          `json:"status" gorm:"not null;default:'ACTIVE'"`
	RequestedBlock bool            `json:"requested_block" gorm:"default:false"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsActive reports whether the card may participate in a transfer.
func (c *Card) IsActive() bool {
	return c.Status == CardStatusActive
}

// ExpiredAsOf reports whether the card's expiry date lies strictly
// before the calendar date of now.
func (c *Card) ExpiredAsOf(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expiry := time.Date(c.ExpiryDate.Year(), c.ExpiryDate.Month(), c.ExpiryDate.Day(), 0, 0, 0, 0, time.UTC)
	return expiry.Before(today)
}
