// Package transfer implements card-to-card money movement. The caller
// must own the source card; the destination card can belong to anyone.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bankcards/internal/errors"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

type service struct {
	cards     repositories.CardRepository
	transfers repositories.TransferRepository
	cache     Cache
	policy    authz.Policy
}

// NewService creates a new transfer service.
func NewService(cards repositories.CardRepository, transfers repositories.TransferRepository, cache Cache, policy authz.Policy) Service {
	if cards == nil {
		panic("card repository is required")
	}
	if transfers == nil {
		panic("transfer repository is required")
	}
	return &service{
		cards:     cards,
		transfers: transfers,
		cache:     cache,
		policy:    policy,
	}
}

// Create validates the transfer and settles it. Preconditions are
// checked in a fixed order: same-card, ownership, sender status,
// recipient status, and finally funds. The funds check happens inside
// the debit itself, so a concurrent transfer can never overdraw the
// source card.
func (s *service) Create(ctx context.Context, actor authz.Actor, req CreateRequest) (*models.Transfer, error) {
	if req.FromCardID == req.ToCardID {
		return nil, errors.ErrSameCardTransfer
	}
	if !req.Amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}

	from, err := s.getCard(req.FromCardID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanTransferFrom(actor, from); err != nil {
		return nil, err
	}

	to, err := s.getCard(req.ToCardID)
	if err != nil {
		return nil, err
	}

	if !from.IsActive() {
		return nil, errors.ErrSenderCardNotActive
	}
	if !to.IsActive() {
		return nil, errors.ErrRecipientCardNotActive
	}

	transfer := &models.Transfer{
		Reference:   uuid.New().String(),
		FromCardID:  from.ID,
		ToCardID:    to.ID,
		Amount:      req.Amount,
		Description: req.Description,
		UserID:      actor.UserID,
	}

	err = s.cards.ExecuteInTransaction(func(tx repositories.CardRepository) error {
		if err := tx.AdjustBalance(from.ID, req.Amount.Neg()); err != nil {
			if err == repositories.ErrBalanceConstraint {
				return errors.ErrInsufficientFunds
			}
			return err
		}
		if err := tx.AdjustBalance(to.ID, req.Amount); err != nil {
			return err
		}
		return tx.CreateTransfer(transfer)
	})
	if err != nil {
		if domainErr, ok := err.(*errors.DomainError); ok {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to execute transfer: %w", err)
	}

	s.invalidate(ctx, from.ID, to.ID)
	return transfer, nil
}

func (s *service) GetByID(ctx context.Context, actor authz.Actor, transferID uint) (*models.Transfer, error) {
	transfer, err := s.transfers.GetByID(transferID)
	if err != nil {
		if err == repositories.ErrTransferNotFound {
			return nil, errors.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	if err := s.policy.CanViewTransfer(actor, transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}

func (s *service) ListMine(ctx context.Context, actor authz.Actor, p *utils.Pagination) ([]*models.Transfer, error) {
	transfers, total, err := s.transfers.FindByUserIDPaginated(actor.UserID, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	p.SetTotal(total)
	return transfers, nil
}

// ListForCard returns the transfers touching a card, newest first. An
// administrator sees every record; any other caller sees only the
// transfers they initiated on that card.
func (s *service) ListForCard(ctx context.Context, actor authz.Actor, cardID uint, p *utils.Pagination) ([]*models.Transfer, error) {
	card, err := s.getCard(cardID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanViewCard(actor, card); err != nil {
		return nil, err
	}

	var (
		transfers []*models.Transfer
		total     int64
	)
	if actor.IsAdmin() {
		transfers, total, err = s.transfers.FindByCardIDPaginated(cardID, p.Limit, p.Offset)
	} else {
		transfers, total, err = s.transfers.FindByUserIDAndCardIDPaginated(actor.UserID, cardID, p.Limit, p.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	p.SetTotal(total)
	return transfers, nil
}

func (s *service) getCard(cardID uint) (*models.Card, error) {
	card, err := s.cards.GetByID(cardID)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func (s *service) invalidate(ctx context.Context, cardIDs ...uint) {
	if s.cache == nil {
		return
	}
	for _, id := range cardIDs {
		s.cache.InvalidateCard(ctx, id)
	}
}
