package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an append-only record of a completed card-to-card
// movement. It is created once inside the transfer transaction and
// never updated afterwards.
type Transfer struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	Reference   string          `json:"reference" gorm:"uniqueIndex;not null"`
	FromCardID  uint            `json:"from_card_id" gorm:"not null;index"`
	ToCardID    uint            `json:"to_card_id" gorm:"not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description,omitempty"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
}
