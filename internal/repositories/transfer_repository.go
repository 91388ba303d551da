package repositories

import (
	"errors"

	"bankcards/internal/models"
)

var ErrTransferNotFound = errors.New("transfer not found")

// TransferRepository reads transfer records. Writes go through
// CardRepository.CreateTransfer so they share the transfer's
// transaction boundary; transfer rows are never updated or deleted.
type TransferRepository interface {
	GetByID(id uint) (*models.Transfer, error)
	FindByUserIDPaginated(userID uint, limit, offset int) ([]*models.Transfer, int64, error)
	FindByCardIDPaginated(cardID uint, limit, offset int) ([]*models.Transfer, int64, error)
	FindByUserIDAndCardIDPaginated(userID, cardID uint, limit, offset int) ([]*models.Transfer, int64, error)
}
