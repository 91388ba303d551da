package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransferRequest(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantField string
	}{
		{name: "valid amount", amount: "100.50"},
		{name: "minimum amount", amount: "0.01"},
		{name: "zero amount", amount: "0", wantField: "amount"},
		{name: "negative amount", amount: "-5", wantField: "amount"},
		{name: "over the limit", amount: "1000000.01", wantField: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.TransferRequest(1, 2, decimal.RequireFromString(tt.amount), "rent")

			if tt.wantField == "" {
				assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
			} else {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}

	t.Run("missing card ids", func(t *testing.T) {
		v := New()
		v.TransferRequest(0, 0, decimal.RequireFromString("10"), "")

		assert.Contains(t, v.Errors, "from_card_id")
		assert.Contains(t, v.Errors, "to_card_id")
	})
}

func TestCardRequest(t *testing.T) {
	expiry := time.Date(2028, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid request", func(t *testing.T) {
		v := New()
		v.CardRequest("IVAN IVANOV", expiry, decimal.RequireFromString("100"))
		assert.True(t, v.Valid())
	})

	t.Run("owner too short", func(t *testing.T) {
		v := New()
		v.CardRequest("I", expiry, decimal.Zero)
		assert.Contains(t, v.Errors, "owner")
	})

	t.Run("missing expiry", func(t *testing.T) {
		v := New()
		v.CardRequest("IVAN IVANOV", time.Time{}, decimal.Zero)
		assert.Contains(t, v.Errors, "expiry_date")
	})

	t.Run("negative balance", func(t *testing.T) {
		v := New()
		v.CardRequest("IVAN IVANOV", expiry, decimal.RequireFromString("-1"))
		assert.Contains(t, v.Errors, "balance")
	})
}

func TestUserRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		v := New()
		v.UserRequest("ivan@example.com", "Str0ng!pass", "Ivan", "Ivanov")
		assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
	})

	t.Run("bad email", func(t *testing.T) {
		v := New()
		v.UserRequest("not-an-email", "Str0ng!pass", "Ivan", "Ivanov")
		assert.Contains(t, v.Errors, "email")
	})

	t.Run("weak password", func(t *testing.T) {
		v := New()
		v.UserRequest("ivan@example.com", "short", "Ivan", "Ivanov")
		assert.Contains(t, v.Errors, "password")
	})
}
