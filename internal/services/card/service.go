// Package card implements the card lifecycle: issuing, the
// ACTIVE/BLOCKED/EXPIRED state machine and owner block requests.
package card

import (
	"context"
	"fmt"
	"time"

	"bankcards/internal/errors"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

type service struct {
	repo          repositories.CardRepository
	cache         Cache
	policy        authz.Policy
	encryptionKey []byte
	now           func() time.Time
}

// NewService creates a new card service. The encryption key is applied
// to every stored card number.
func NewService(repo repositories.CardRepository, cache Cache, policy authz.Policy, encryptionKey []byte) Service {
	if repo == nil {
		panic("repo is required")
	}
	if len(encryptionKey) == 0 {
		panic("encryption key is required")
	}
	return &service{
		repo:          repo,
		cache:         cache,
		policy:        policy,
		encryptionKey: encryptionKey,
		now:           time.Now,
	}
}

func (s *service) Create(ctx context.Context, actor authz.Actor, req CreateRequest) (*models.Card, error) {
	if err := s.policy.CanManageCards(actor); err != nil {
		return nil, err
	}

	number, err := utils.GenerateCardNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate card number: %w", err)
	}
	encrypted, err := utils.EncryptCardNumber(number, s.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt card number: %w", err)
	}

	card := &models.Card{
		UserID:       req.UserID,
		Number:       encrypted,
		MaskedNumber: utils.MaskCardNumber(number),
		Owner:        req.Owner,
		ExpiryDate:   req.ExpiryDate,
		Status:       models.CardStatusActive,
		Balance:      req.InitialBalance,
	}
	if card.ExpiredAsOf(s.now()) {
		card.Status = models.CardStatusExpired
	}

	if err := s.repo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	s.cacheCard(ctx, card)
	return card, nil
}

func (s *service) Update(ctx context.Context, actor authz.Actor, cardID uint, req UpdateRequest) (*models.Card, error) {
	if err := s.policy.CanManageCards(actor); err != nil {
		return nil, err
	}

	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}

	card.Owner = req.Owner
	card.ExpiryDate = req.ExpiryDate
	// An edit can push a card into EXPIRED but never out of it; leaving
	// EXPIRED takes an explicit activate. A blocked card stays blocked.
	if card.Status != models.CardStatusBlocked && card.ExpiredAsOf(s.now()) {
		card.Status = models.CardStatusExpired
	}

	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	s.invalidate(ctx, card.ID)
	return card, nil
}

// Block moves the card to BLOCKED from any state and resolves a pending
// owner block request.
func (s *service) Block(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error) {
	if err := s.policy.CanManageCards(actor); err != nil {
		return nil, err
	}

	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}

	card.Status = models.CardStatusBlocked
	card.RequestedBlock = false

	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to block card: %w", err)
	}
	s.invalidate(ctx, card.ID)
	return card, nil
}

// Activate returns a card to ACTIVE, unless its expiry date has already
// passed, in which case the card lands in EXPIRED instead.
func (s *service) Activate(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error) {
	if err := s.policy.CanManageCards(actor); err != nil {
		return nil, err
	}

	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}

	if card.ExpiredAsOf(s.now()) {
		card.Status = models.CardStatusExpired
	} else {
		card.Status = models.CardStatusActive
	}
	card.RequestedBlock = false

	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to activate card: %w", err)
	}
	s.invalidate(ctx, card.ID)
	return card, nil
}

// RequestBlock records the owner's wish to have the card blocked. The
// status does not change until an administrator acts on the request.
func (s *service) RequestBlock(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error) {
	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanRequestBlock(actor, card); err != nil {
		return nil, err
	}

	if card.RequestedBlock {
		return card, nil
	}
	card.RequestedBlock = true

	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to save block request: %w", err)
	}
	s.invalidate(ctx, card.ID)
	return card, nil
}

func (s *service) Delete(ctx context.Context, actor authz.Actor, cardID uint) error {
	if err := s.policy.CanManageCards(actor); err != nil {
		return err
	}

	if err := s.repo.Delete(cardID); err != nil {
		if err == repositories.ErrCardNotFound {
			return errors.ErrCardNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	s.invalidate(ctx, cardID)
	return nil
}

func (s *service) GetByID(ctx context.Context, actor authz.Actor, cardID uint) (*models.Card, error) {
	if s.cache != nil {
		if card, err := s.cache.GetCard(ctx, cardID); err == nil {
			if err := s.policy.CanViewCard(actor, card); err != nil {
				return nil, err
			}
			return card, nil
		}
	}

	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanViewCard(actor, card); err != nil {
		return nil, err
	}
	s.cacheCard(ctx, card)
	return card, nil
}

// ListMine pages through the caller's own cards. For an administrator
// the same listing spans every card.
func (s *service) ListMine(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Card, error) {
	if actor.IsAdmin() {
		return s.ListAll(ctx, actor, p)
	}

	cards, total, err := s.repo.FindByUserIDPaginated(actor.UserID, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	p.SetTotal(total)
	return cards, nil
}

func (s *service) ListAll(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Card, error) {
	if err := s.policy.CanManageCards(actor); err != nil {
		return nil, err
	}

	cards, total, err := s.repo.FindAllPaginated(p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	p.SetTotal(total)
	return cards, nil
}

func (s *service) getCard(cardID uint) (*models.Card, error) {
	card, err := s.repo.GetByID(cardID)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func (s *service) cacheCard(ctx context.Context, card *models.Card) {
	if s.cache != nil {
		s.cache.CacheCard(ctx, card)
	}
}

func (s *service) invalidate(ctx context.Context, cardID uint) {
	if s.cache != nil {
		s.cache.InvalidateCard(ctx, cardID)
	}
}
