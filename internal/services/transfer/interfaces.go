package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"bankcards/internal/models"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

// Cache defines the card cache invalidation used after a transfer
// settles.
type Cache interface {
	InvalidateCard(ctx context.Context, cardID uint) error
}

// Service moves money from a card the caller owns to any other card.
// Each transfer settles atomically: either both balance legs and the
// transfer record are committed, or none of them are.
type Service interface {
	Create(ctx context.Context, actor authz.Actor, req CreateRequest) (*models.Transfer, error)
	GetByID(ctx context.Context, actor authz.Actor, transferID uint) (*models.Transfer, error)
	ListMine(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Transfer, error)
	ListForCard(ctx context.Context, actor authz.Actor, cardID uint, p *utils.Pagination) ([]*models.Transfer, error)
}

// CreateRequest carries the parameters of a transfer.
type CreateRequest struct {
	FromCardID  uint
	ToCardID    uint
	Amount      decimal.Decimal
	Description string
}
