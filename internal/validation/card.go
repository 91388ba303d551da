package validation

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardRequest validates the fields of a card create/update request.
func (v *Validator) CardRequest(owner string, expiryDate time.Time, balance decimal.Decimal) {
	v.Required("owner", owner)
	v.MinLength("owner", owner, MinOwnerLength)
	v.MaxLength("owner", owner, MaxOwnerLength)
	v.Required("expiry_date", expiryDate)
	v.Check(!balance.IsNegative(), "balance", "must not be negative")
}
