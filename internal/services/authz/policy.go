// Package authz decides, per operation, whether the acting identity may
// proceed. All ownership and role checks live here so the lifecycle and
// transfer services consult one policy instead of repeating the checks
// at every call site.
package authz

import (
	"bankcards/internal/errors"
	"bankcards/internal/models"
)

// Actor is the explicit caller identity threaded into every core
// operation. It is built from the authenticated claims at the handler
// boundary; the services never read it from ambient state.
type Actor struct {
	UserID uint
	Role   string
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Policy evaluates flat ownership-or-admin rules. It is stateless.
type Policy struct{}

func NewPolicy() Policy {
	return Policy{}
}

// CanManageCards permits the administrative card operations: create,
// update, block, activate, delete, and the list-all view.
func (Policy) CanManageCards(actor Actor) error {
	if !actor.IsAdmin() {
		return errors.ErrAccessDenied
	}
	return nil
}

// CanViewCard permits reading a card by id: the owning user or an
// administrator.
func (Policy) CanViewCard(actor Actor, card *models.Card) error {
	if card.UserID != actor.UserID && !actor.IsAdmin() {
		return errors.ErrAccessDenied
	}
	return nil
}

// CanRequestBlock permits a block request only for the card's owning
// user, independent of role.
func (Policy) CanRequestBlock(actor Actor, card *models.Card) error {
	if card.UserID != actor.UserID {
		return errors.ErrAccessDenied
	}
	return nil
}

// CanTransferFrom permits initiating a transfer only for the owner of
// the source card.
func (Policy) CanTransferFrom(actor Actor, card *models.Card) error {
	if card.UserID != actor.UserID {
		return errors.ErrAccessDenied
	}
	return nil
}

// CanViewTransfer permits reading a transfer: the initiating user or an
// administrator.
func (Policy) CanViewTransfer(actor Actor, transfer *models.Transfer) error {
	if transfer.UserID != actor.UserID && !actor.IsAdmin() {
		return errors.ErrAccessDenied
	}
	return nil
}

// CanManageUsers permits the administrative user operations.
func (Policy) CanManageUsers(actor Actor) error {
	if !actor.IsAdmin() {
		return errors.ErrAccessDenied
	}
	return nil
}
