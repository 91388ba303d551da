package card

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bankcards/internal/models"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

// Cache defines the card caching operations used by the service.
type Cache interface {
	CacheCard(ctx context.Context, card *models.Card) error
	GetCard(ctx context.Context, cardID uint) (*models.Card, error)
	InvalidateCard(ctx context.Context, cardID uint) error
}

// Service manages the card lifecycle: issuing, status transitions and
// removal. Administrative operations require an admin actor; reads are
// open to the owning user as well.
type Service interface {
	Create(ctx context.Context, actor authz.Actor, req CreateRequest) (*models.Card, error)
	Update(ctx context.Context, actor authz.Actor, cardID uint, req UpdateRequest) (*models.Card, error)
	Block(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error)
	Activate(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error)
	RequestBlock(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error)
	Delete(ctx context.Context, actor authz.Actor, cardID uint) error

	GetByID(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error)
	ListMine(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Card, error)
	ListAll(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Card, error)
}

// CreateRequest carries the admin-supplied attributes of a new card.
type CreateRequest struct {
	UserID         uint
	Owner          string
	ExpiryDate     time.Time
	InitialBalance decimal.Decimal
}

// UpdateRequest carries the editable attributes of an existing card.
type UpdateRequest struct {
	Owner      string
	ExpiryDate time.Time
}
