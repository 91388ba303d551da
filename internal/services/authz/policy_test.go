package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bankcards/internal/errors"
	"bankcards/internal/models"
)

func TestCanManageCards(t *testing.T) {
	p := NewPolicy()

	assert.NoError(t, p.CanManageCards(Actor{UserID: 1, Role: models.RoleAdmin}))
	assert.ErrorIs(t, p.CanManageCards(Actor{UserID: 1, Role: models.RoleUser}), errors.ErrAccessDenied)
}

func TestCanViewCard(t *testing.T) {
	p := NewPolicy()
	card := &models.Card{ID: 10, UserID: 5}

	assert.NoError(t, p.CanViewCard(Actor{UserID: 5, Role: models.RoleUser}, card))
	assert.NoError(t, p.CanViewCard(Actor{UserID: 99, Role: models.RoleAdmin}, card))
	assert.ErrorIs(t, p.CanViewCard(Actor{UserID: 6, Role: models.RoleUser}, card), errors.ErrAccessDenied)
}

func TestCanRequestBlockIsOwnerOnly(t *testing.T) {
	p := NewPolicy()
	card := &models.Card{ID: 10, UserID: 5}

	assert.NoError(t, p.CanRequestBlock(Actor{UserID: 5, Role: models.RoleUser}, card))

	// Admins do not request blocks on cards they do not own; they block
	// directly through the management operations.
	assert.ErrorIs(t, p.CanRequestBlock(Actor{UserID: 99, Role: models.RoleAdmin}, card), errors.ErrAccessDenied)
}

func TestCanTransferFrom(t *testing.T) {
	p := NewPolicy()
	card := &models.Card{ID: 10, UserID: 5}

	assert.NoError(t, p.CanTransferFrom(Actor{UserID: 5, Role: models.RoleUser}, card))
	assert.ErrorIs(t, p.CanTransferFrom(Actor{UserID: 99, Role: models.RoleAdmin}, card), errors.ErrAccessDenied)
}

func TestCanViewTransfer(t *testing.T) {
	p := NewPolicy()
	tr := &models.Transfer{ID: 1, UserID: 5}

	assert.NoError(t, p.CanViewTransfer(Actor{UserID: 5, Role: models.RoleUser}, tr))
	assert.NoError(t, p.CanViewTransfer(Actor{UserID: 99, Role: models.RoleAdmin}, tr))
	assert.ErrorIs(t, p.CanViewTransfer(Actor{UserID: 6, Role: models.RoleUser}, tr), errors.ErrAccessDenied)
}
