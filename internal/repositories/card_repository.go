package repositories

import (
	"errors"

	"bankcards/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrBalanceConstraint = errors.New("balance adjustment would go negative")
)

// CardRepository defines the interface for card-related database
// operations. AdjustBalance must be a single atomic read-modify-write:
// two concurrent debits against the same card must never both succeed
// on a stale balance. CreateTransfer lives here so that the two balance
// legs and the transfer record can share one ExecuteInTransaction
// boundary.
type CardRepository interface {
	Create(card *models.Card) error
	GetByID(id uint) (*models.Card, error)
	GetByUserID(userID uint) ([]*models.Card, error)
	FindByUserIDPaginated(userID uint, limit, offset int) ([]*models.Card, int64, error)
	FindAllPaginated(limit, offset int) ([]*models.Card, int64, error)
	Update(card *models.Card) error
	Delete(id uint) error

	// AdjustBalance applies a signed delta to the card balance as one
	// conditional update. It fails with ErrBalanceConstraint when the
	// resulting balance would be negative and ErrCardNotFound when the
	// card does not exist; in both cases the balance is untouched.
	AdjustBalance(cardID uint, delta decimal.Decimal) error

	CreateTransfer(transfer *models.Transfer) error

	// ExecuteInTransaction runs fn against a repository bound to a
	// database transaction; any error rolls back every operation
	// performed through it.
	ExecuteInTransaction(fn func(CardRepository) error) error
}
