package validation

import (
	"github.com/shopspring/decimal"
)

// TransferRequest validates the fields of a transfer create request.
// The engine re-checks the amount invariant itself; this catches
// malformed input before any card is touched.
func (v *Validator) TransferRequest(fromCardID, toCardID uint, amount decimal.Decimal, description string) {
	v.Required("from_card_id", fromCardID)
	v.Required("to_card_id", toCardID)
	v.Check(amount.GreaterThanOrEqual(decimal.RequireFromString(MinTransferAmount)),
		"amount", "must be greater than 0")
	v.Check(amount.LessThanOrEqual(decimal.RequireFromString(MaxTransferAmount)),
		"amount", "must not exceed 1,000,000")
	v.MaxLength("description", description, MaxDescriptionLength)
}
